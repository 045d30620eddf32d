package commtypes

import (
	"fmt"

	"stateful-stream/pkg/debug"
)

// WindowedMessage is a message tagged with the windows it was assigned to.
// A message tagged with multiple windows is one logical occurrence replicated
// across those windows.
type WindowedMessage struct {
	Msg     Message
	Windows []Window
}

var _ = fmt.Stringer(WindowedMessage{})

func NewWindowedMessage(msg Message, windows ...Window) WindowedMessage {
	return WindowedMessage{
		Msg:     msg,
		Windows: windows,
	}
}

func (wm WindowedMessage) String() string {
	return fmt.Sprintf("WinMsg: {Msg: %v, NumWin: %d}", wm.Msg, len(wm.Windows))
}

// Window returns the single window this message is tagged with.
// It must only be called on an exploded message.
func (wm WindowedMessage) Window() Window {
	debug.Assert(len(wm.Windows) == 1, "expected exactly one window")
	return wm.Windows[0]
}

// ExplodeWindows decomposes a multi-window message into one single-window
// message per tagged window. No windows are merged or dropped.
func (wm WindowedMessage) ExplodeWindows() []WindowedMessage {
	if len(wm.Windows) <= 1 {
		return []WindowedMessage{wm}
	}
	exploded := make([]WindowedMessage, 0, len(wm.Windows))
	for _, win := range wm.Windows {
		exploded = append(exploded, WindowedMessage{
			Msg:     wm.Msg,
			Windows: []Window{win},
		})
	}
	return exploded
}
