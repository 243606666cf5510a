package worker

import (
	"testing"
	"time"
)

func TestSweepWindowTargetsTomorrow(t *testing.T) {
	prev := time.Date(2026, 3, 10, 8, 59, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	win := SweepWindow(prev, now)
	if win.Date.Format("2006-01-02") != "2026-03-11" {
		t.Errorf("expected tomorrow, got %s", win.Date.Format("2006-01-02"))
	}
	if win.From != "08:59:00 " || win.To != "09:00:00 " {
		t.Errorf("unexpected window [%q, %q)", win.From, win.To)
	}
}

func TestSweepWindowCoversSlotStart(t *testing.T) {
	// A tick straddling 09:00 must cover the first slot's canonical string.
	prev := time.Date(2026, 3, 10, 8, 59, 30, 0, time.UTC)
	now := time.Date(2026, 3, 10, 9, 0, 30, 0, time.UTC)

	win := SweepWindow(prev, now)
	slot := "09:00:00 "
	if !(slot >= win.From && slot < win.To) {
		t.Errorf("slot %q not inside window [%q, %q)", slot, win.From, win.To)
	}
}

func TestSweepWindowMidnightRollover(t *testing.T) {
	prev := time.Date(2026, 3, 10, 23, 59, 30, 0, time.UTC)
	now := time.Date(2026, 3, 11, 0, 0, 30, 0, time.UTC)

	win := SweepWindow(prev, now)
	if win.From != "00:00:00 " {
		t.Errorf("expected lower bound reset at midnight, got %q", win.From)
	}
	if win.Date.Format("2006-01-02") != "2026-03-12" {
		t.Errorf("expected day after the new day, got %s", win.Date.Format("2006-01-02"))
	}
}
