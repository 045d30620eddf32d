package commtypes

import "testing"

func TestTimeWindowSerde(t *testing.T) {
	win, err := NewTimeWindow(3, 13)
	if err != nil {
		t.Fatal(err.Error())
	}
	formats := []SerdeFormat{JSON, MSGP}
	for _, format := range formats {
		serde, err := GetTimeWindowSerde(format)
		if err != nil {
			t.Fatal(err.Error())
		}
		enc, err := serde.Encode(win)
		if err != nil {
			t.Fatal(err.Error())
		}
		decoded, err := serde.Decode(enc)
		if err != nil {
			t.Fatal(err.Error())
		}
		got := decoded.(TimeWindow)
		if got.Start() != win.Start() || got.End() != win.End() {
			t.Fatalf("format %d: expected [%d,%d), got [%d,%d)", format,
				win.Start(), win.End(), got.Start(), got.End())
		}
	}
}

func TestGetTimeWindowSerdeRejectsUnknownFormat(t *testing.T) {
	_, err := GetTimeWindowSerde(SerdeFormat(42))
	if err == nil {
		t.Fatal("expected error for unknown serde format")
	}
}
