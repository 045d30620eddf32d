package commtypes

import "testing"

func makeWin(t *testing.T, startMs int64, endMs int64) Window {
	win, err := NewTimeWindow(startMs, endMs)
	if err != nil {
		t.Fatal(err.Error())
	}
	return win
}

func TestExplodeSingleWindowIsNoop(t *testing.T) {
	wm := NewWindowedMessage(Message{Key: 1, Value: 2, Timestamp: 3}, makeWin(t, 0, 10))
	exploded := wm.ExplodeWindows()
	if len(exploded) != 1 {
		t.Fatalf("expected 1 message, got %d", len(exploded))
	}
	if exploded[0].Window().Start() != 0 {
		t.Fatalf("expected window [0,10), got start %d", exploded[0].Window().Start())
	}
}

func TestExplodeProducesOneCopyPerWindow(t *testing.T) {
	wins := []Window{makeWin(t, 0, 10), makeWin(t, 5, 15), makeWin(t, 10, 20)}
	wm := NewWindowedMessage(Message{Key: "k", Value: "v", Timestamp: 7}, wins...)
	exploded := wm.ExplodeWindows()
	if len(exploded) != len(wins) {
		t.Fatalf("expected %d messages, got %d", len(wins), len(exploded))
	}
	for i, single := range exploded {
		if len(single.Windows) != 1 {
			t.Fatalf("copy %d should carry exactly one window, got %d", i, len(single.Windows))
		}
		if single.Window().Start() != wins[i].Start() {
			t.Fatalf("copy %d expected start %d, got %d", i, wins[i].Start(), single.Window().Start())
		}
		if single.Msg.Key != "k" || single.Msg.Timestamp != 7 {
			t.Fatalf("copy %d lost the original message: %v", i, single.Msg)
		}
	}
}

func TestMaxTimestamp(t *testing.T) {
	win := makeWin(t, 0, 10)
	if win.MaxTimestamp() != 10 {
		t.Fatalf("expected max timestamp 10, got %d", win.MaxTimestamp())
	}
}

func TestTimeWindowOverlap(t *testing.T) {
	w1 := makeWin(t, 0, 10)
	w2 := makeWin(t, 5, 15)
	w3 := makeWin(t, 10, 20)
	overlap, err := w1.Overlap(w2)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !overlap {
		t.Error("[0,10) and [5,15) should overlap")
	}
	overlap, err = w1.Overlap(w3)
	if err != nil {
		t.Fatal(err.Error())
	}
	if overlap {
		t.Error("[0,10) and [10,20) should not overlap")
	}
}
