package commtypes

import "fmt"

type Message struct {
	Key       interface{}
	Value     interface{}
	Timestamp int64
}

var _ = fmt.Stringer(Message{})

func (m Message) String() string {
	return fmt.Sprintf("Msg: {Key: %v, Value: %v, Ts: %d}", m.Key, m.Value, m.Timestamp)
}

func (m *Message) UpdateEventTime(ts int64) {
	m.Timestamp = ts
}
