package agitation

import (
	"testing"
	"time"

	"github.com/ivelina/tendril/internal/companion"
)

func ts(sec int) time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC).Add(time.Duration(sec) * time.Second)
}

func TestObserveAccumulatesAndDebounces(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	if esc := m.Observe(SignalBlur, ts(0)); esc != nil {
		t.Errorf("unexpected escalation at score %v", m.Score())
	}
	if m.Score() != 20 {
		t.Errorf("score = %v, want 20", m.Score())
	}

	// Inside the 2.5s debounce window: dropped.
	if m.Observe(SignalBlur, ts(1)); m.Score() != 20 {
		t.Errorf("debounced signal changed score to %v", m.Score())
	}

	// Past the window it counts again.
	if m.Observe(SignalBlur, ts(3)); m.Score() != 40 {
		t.Errorf("score = %v, want 40", m.Score())
	}
}

func TestTierEscalation(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	m.Observe(SignalHidden, ts(0))        // 28
	esc := m.Observe(SignalHidden, ts(3)) // 56, crosses tier 1
	if esc == nil {
		t.Fatal("no escalation crossing tier 1")
	}
	if esc.Tier != 1 || esc.Severity != companion.SeverityMild {
		t.Errorf("escalation = %+v, want tier 1 mild", esc)
	}
	if !m.PendingAck() {
		t.Error("PendingAck = false after escalation")
	}
	if !m.Agitated() {
		t.Error("Agitated = false after escalation")
	}

	m.Observe(SignalHidden, ts(6))       // 84
	esc = m.Observe(SignalHidden, ts(9)) // 112, crosses tier 2
	if esc == nil || esc.Tier != 2 || esc.Severity != companion.SeverityModerate {
		t.Fatalf("escalation = %+v, want tier 2 moderate", esc)
	}

	esc = m.Observe(SignalHidden, ts(12)) // 140, crosses tier 3
	if esc == nil || esc.Tier != 3 || esc.Severity != companion.SeveritySevere {
		t.Fatalf("escalation = %+v, want tier 3 severe", esc)
	}
}

func TestNotifyOnlyOnTierRise(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	m.Observe(SignalHidden, ts(0))
	if esc := m.Observe(SignalHidden, ts(3)); esc == nil {
		t.Fatal("no escalation entering tier 1")
	}

	// Signals that bump the score inside the same tier stay quiet, with or
	// without the cooldown elapsed.
	if esc := m.Observe(SignalHover, ts(10)); esc != nil {
		t.Errorf("escalation without a tier increase: %+v", esc)
	}
	if esc := m.Observe(SignalHover, ts(30)); esc != nil {
		t.Errorf("escalation without a tier increase: %+v", esc)
	}
}

func TestNotifyCooldownGatesRepeatRises(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	m.Observe(SignalHidden, ts(0))
	if esc := m.Observe(SignalHidden, ts(3)); esc == nil {
		t.Fatal("no escalation entering tier 1")
	}

	// Decay out of tier 1, then climb straight back in 14s after the first
	// notification: the per-tier cooldown swallows the repeat.
	for i := 0; i < 4; i++ {
		m.DecayTick(ts(4 + i*4))
	}
	if m.Tier() != 0 {
		t.Fatalf("tier = %d after decay, want 0", m.Tier())
	}
	if esc := m.Observe(SignalHidden, ts(17)); esc != nil {
		t.Errorf("re-escalation inside the cooldown: %+v", esc)
	}

	// Same dance again once the cooldown has passed: notify.
	for i := 0; i < 5; i++ {
		m.DecayTick(ts(21 + i*4))
	}
	if m.Tier() != 0 {
		t.Fatalf("tier = %d after second decay, want 0", m.Tier())
	}
	if esc := m.Observe(SignalHidden, ts(38)); esc == nil {
		t.Error("no re-notification after the cooldown expired")
	}
}

func TestScoreCapsAtMax(t *testing.T) {
	m := NewMonitor(DefaultConfig())
	for i := 0; i < 10; i++ {
		m.Observe(SignalHidden, ts(i*6))
		m.Observe(SignalBlur, ts(i*6+3))
	}
	if m.Score() != 150 {
		t.Errorf("score = %v, want pinned at 150", m.Score())
	}
}

func TestDecayAndStickyTier(t *testing.T) {
	m := NewMonitor(DefaultConfig())
	for i := 0; i < 3; i++ {
		m.Observe(SignalHidden, ts(i*3)) // 84 total
	}
	if m.Tier() != 1 {
		t.Fatalf("tier = %d, want 1", m.Tier())
	}

	// Decay from 84: mid band, -6 per step. Tier 1 holds down to 35.
	now := 12
	for m.Score() >= 35 {
		m.DecayTick(ts(now))
		now += 4
		if m.Score() >= 35 && m.Tier() != 1 {
			t.Fatalf("tier dropped at score %v, hold bound is 35", m.Score())
		}
	}
	if m.Tier() != 0 {
		t.Errorf("tier = %d below hold bound, want 0", m.Tier())
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	m := NewMonitor(DefaultConfig())
	m.Observe(SignalHover, ts(0)) // 10
	m.DecayTick(ts(4))
	m.DecayTick(ts(8))
	if m.Score() != 0 {
		t.Errorf("score = %v, want 0", m.Score())
	}
}

func TestRestlessPointer(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	// Calm drift: short travel, no reversals.
	for i := 0; i < 10; i++ {
		if esc := m.RecordPointer(i*10, 0, ts(i)); esc != nil {
			t.Fatalf("calm pointer escalated: %+v", esc)
		}
	}
	if m.Score() != 0 {
		t.Fatalf("calm pointer scored %v", m.Score())
	}

	// Frantic zigzag inside one window: many reversals.
	m2 := NewMonitor(DefaultConfig())
	fired := false
	for i := 0; i < 40; i++ {
		x := 0
		if i%2 == 0 {
			x = 50
		}
		if esc := m2.RecordPointer(x, 0, ts(60).Add(time.Duration(i)*100*time.Millisecond)); esc != nil {
			fired = true
		}
	}
	if !fired && m2.Score() == 0 {
		t.Error("restless pointer never scored")
	}
}

func TestCompanionHoverPestering(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	m.RecordCompanionHover(ts(0))
	m.RecordCompanionHover(ts(2))
	m.RecordCompanionHover(ts(4))
	if m.Score() != 0 {
		t.Fatalf("score = %v before reaching hover count", m.Score())
	}
	m.RecordCompanionHover(ts(6))
	if m.Score() != 10 {
		t.Errorf("score = %v after fourth hover, want 10", m.Score())
	}

	// Old hovers fall out of the 10s window.
	m2 := NewMonitor(DefaultConfig())
	m2.RecordCompanionHover(ts(0))
	m2.RecordCompanionHover(ts(1))
	m2.RecordCompanionHover(ts(12))
	m2.RecordCompanionHover(ts(13))
	if m2.Score() != 0 {
		t.Errorf("score = %v with stale hovers, want 0", m2.Score())
	}
}

func TestAcknowledge(t *testing.T) {
	m := NewMonitor(DefaultConfig())
	m.Observe(SignalHidden, ts(0))
	m.Observe(SignalHidden, ts(3))
	if !m.PendingAck() {
		t.Fatal("no pending ack")
	}
	m.Acknowledge()
	if m.PendingAck() {
		t.Error("ack did not clear")
	}
	if !m.Agitated() {
		t.Error("Agitated cleared by ack; it must stick")
	}
}
