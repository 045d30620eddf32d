package processor

import (
	"testing"
	"time"

	"stateful-stream/pkg/commtypes"
	"stateful-stream/pkg/utils"
)

const (
	TEST_TWS_SIZE  = 123
	TEST_TWS_GRACE = 1024
)

func TestShouldSetWindowSize(t *testing.T) {
	tws, err := NewTimeWindowsNoGrace(time.Duration(TEST_TWS_SIZE) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	if tws.SizeMs != TEST_TWS_SIZE {
		t.Fatalf("expected %d, got %d", TEST_TWS_SIZE, tws.SizeMs)
	}
	tws, err = NewTimeWindowsWithGrace(time.Duration(TEST_TWS_SIZE)*time.Millisecond,
		time.Duration(TEST_TWS_GRACE)*time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	if tws.SizeMs != TEST_TWS_SIZE {
		t.Fatalf("expected %d, got %d", TEST_TWS_SIZE, tws.SizeMs)
	}
	if tws.GracePeriodMs() != TEST_TWS_GRACE {
		t.Fatalf("expected %d, got %d", TEST_TWS_GRACE, tws.GracePeriodMs())
	}
}

func TestShouldRejectNonPositiveSize(t *testing.T) {
	_, err := NewTimeWindowsNoGrace(0)
	if err != DurationLeqZero {
		t.Fatalf("expected DurationLeqZero, got %v", err)
	}
}

func TestShouldSetWindowAdvance(t *testing.T) {
	adv := 4
	tws, err := NewTimeWindowsNoGrace(time.Duration(TEST_TWS_GRACE) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	tws, err = tws.AdvanceBy(time.Duration(adv) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	if tws.AdvanceMs != int64(adv) {
		t.Fatalf("expected %d, got %d", adv, tws.AdvanceMs)
	}
}

func TestShouldRejectAdvanceLargerThanSize(t *testing.T) {
	tws, err := NewTimeWindowsNoGrace(time.Duration(5) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	_, err = tws.AdvanceBy(time.Duration(6) * time.Millisecond)
	if err != WindowAdvanceLargerThanSize {
		t.Fatalf("expected WindowAdvanceLargerThanSize, got %v", err)
	}
}

func TestShouldComputeWindowsForHoppingWindows(t *testing.T) {
	tws, err := NewTimeWindowsNoGrace(time.Duration(12) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	tws, err = tws.AdvanceBy(time.Duration(5) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	matched, keys, err := tws.WindowsFor(21)
	if err != nil {
		t.Fatal(err.Error())
	}
	expect_size := 12/5 + 1
	l := len(matched)
	if l != expect_size {
		utils.FatalMsg(expect_size, l, t)
	}
	if len(keys) != expect_size {
		utils.FatalMsg(expect_size, len(keys), t)
	}

	expected, err := commtypes.NewTimeWindow(10, 22)
	if err != nil {
		t.Fatal(err.Error())
	}
	w := matched[10]
	if w.Start() != expected.Start() || w.End() != expected.End() {
		t.Fatalf("expected [%d,%d), got [%d,%d)", expected.Start(), expected.End(), w.Start(), w.End())
	}
}

func TestShouldComputeWindowsForTumblingWindows(t *testing.T) {
	tws, err := NewTimeWindowsNoGrace(time.Duration(12) * time.Millisecond)
	if err != nil {
		t.Fatal(err.Error())
	}
	matched, keys, err := tws.WindowsFor(21)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(matched) != 1 {
		utils.FatalMsg(1, len(matched), t)
	}
	if keys[0] != 12 {
		utils.FatalMsg(12, keys[0], t)
	}
	w := matched[12]
	if w.Start() != 12 || w.End() != 24 {
		t.Fatalf("expected [12,24), got [%d,%d)", w.Start(), w.End())
	}
}
