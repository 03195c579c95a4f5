package companion

import (
	"testing"
	"time"
)

func TestBoardExpiry(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := NewBoard()
	b.clock = func() time.Time { return base }

	if _, ok := b.Current(base); ok {
		t.Fatal("empty board should have no notice")
	}

	b.Notify(Notice{Text: "hello", Duration: 5 * time.Second})

	if n, ok := b.Current(base.Add(4 * time.Second)); !ok || n.Text != "hello" {
		t.Fatalf("notice should still be visible, got ok=%v text=%q", ok, n.Text)
	}
	if _, ok := b.Current(base.Add(5 * time.Second)); ok {
		t.Fatal("notice should expire at its duration")
	}
}

func TestBoardNewerNoticeWins(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := NewBoard()
	b.clock = func() time.Time { return base }

	b.Notify(Notice{Text: "first", Duration: 10 * time.Second})
	b.Notify(Notice{Text: "second", Duration: 10 * time.Second})

	n, ok := b.Current(base)
	if !ok || n.Text != "second" {
		t.Fatalf("expected latest notice, got ok=%v text=%q", ok, n.Text)
	}
}

func TestBoardZeroDurationSticks(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := NewBoard()
	b.clock = func() time.Time { return base }

	b.Notify(Notice{Text: "sticky"})

	if _, ok := b.Current(base.Add(time.Hour)); !ok {
		t.Fatal("zero-duration notice should not expire")
	}
	b.Clear()
	if _, ok := b.Current(base); ok {
		t.Fatal("cleared board should have no notice")
	}
}
