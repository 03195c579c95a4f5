// Package agitation watches low-level distraction signals during a focus
// session and folds them into a single decaying score with hysteresis tiers.
// Raw signals are noisy; the score plus per-signal debounce is what keeps the
// companion from nagging over a single stray alt-tab.
package agitation

import (
	"math"
	"time"

	"github.com/ivelina/tendril/internal/companion"
)

// Signal is one observable distraction event.
type Signal int

const (
	// SignalHidden fires when the app window is hidden entirely.
	SignalHidden Signal = iota
	// SignalBlur fires when the app loses input focus but stays visible.
	SignalBlur
	// SignalPointer fires when pointer movement looks restless.
	SignalPointer
	// SignalHover fires when the user keeps poking at the companion.
	SignalHover
)

// Escalation reports that the score crossed into a tier worth surfacing.
type Escalation struct {
	Tier     int
	Severity companion.Severity
	Score    float64
}

type pointerSample struct {
	at   time.Time
	x, y float64
}

// Monitor accumulates distraction signals for one session. It is not safe
// for concurrent use; the UI loop owns it.
type Monitor struct {
	cfg Config

	score float64
	tier  int

	lastSignal map[Signal]time.Time
	lastNotify map[int]time.Time

	pointer []pointerSample
	hovers  []time.Time

	pendingAck bool
	agitated   bool
}

// NewMonitor returns a monitor with a zero score.
func NewMonitor(cfg Config) *Monitor {
	return &Monitor{
		cfg:        cfg,
		lastSignal: make(map[Signal]time.Time),
		lastNotify: make(map[int]time.Time),
	}
}

// Score returns the current agitation score.
func (m *Monitor) Score() float64 { return m.score }

// DecayInterval is how often DecayTick should run.
func (m *Monitor) DecayInterval() time.Duration {
	if m.cfg.DecayInterval <= 0 {
		return 4 * time.Second
	}
	return m.cfg.DecayInterval
}

// Tier returns the current hysteresis tier, 0 through 3.
func (m *Monitor) Tier() int { return m.tier }

// PendingAck reports whether an escalation is waiting for the user to
// acknowledge it.
func (m *Monitor) PendingAck() bool { return m.pendingAck }

// Agitated reports whether any escalation happened during this session. It
// never resets; the flag follows the session into its close report.
func (m *Monitor) Agitated() bool { return m.agitated }

// Acknowledge clears the pending escalation.
func (m *Monitor) Acknowledge() { m.pendingAck = false }

// Observe applies one signal. Signals inside their per-signal debounce
// window are dropped. Returns a non-nil escalation when the user should be
// nudged.
func (m *Monitor) Observe(sig Signal, now time.Time) *Escalation {
	delta, debounce := m.signalParams(sig)
	if last, ok := m.lastSignal[sig]; ok && now.Sub(last) < debounce {
		return nil
	}
	m.lastSignal[sig] = now
	m.score += delta
	if max := m.maxScore(); m.score > max {
		m.score = max
	}
	return m.retier(now)
}

// RecordPointer feeds one pointer position. When movement inside the rolling
// window exceeds the travel or reversal thresholds it counts as a restless
// pointer signal.
func (m *Monitor) RecordPointer(x, y int, now time.Time) *Escalation {
	m.pointer = append(m.pointer, pointerSample{at: now, x: float64(x), y: float64(y)})
	cut := now.Add(-m.cfg.PointerWindow)
	for len(m.pointer) > 0 && m.pointer[0].at.Before(cut) {
		m.pointer = m.pointer[1:]
	}

	var travel float64
	reversals := 0
	prevDir := 0
	for i := 1; i < len(m.pointer); i++ {
		a, b := m.pointer[i-1], m.pointer[i]
		travel += math.Hypot(b.x-a.x, b.y-a.y)
		dir := 0
		if b.x > a.x {
			dir = 1
		} else if b.x < a.x {
			dir = -1
		}
		if dir != 0 && prevDir != 0 && dir != prevDir {
			reversals++
		}
		if dir != 0 {
			prevDir = dir
		}
	}

	if travel > m.cfg.PointerTravelPixels || reversals > m.cfg.PointerReversals {
		return m.Observe(SignalPointer, now)
	}
	return nil
}

// RecordCompanionHover feeds one hover over the companion. Repeated hovers
// inside the rolling window count as a hover signal.
func (m *Monitor) RecordCompanionHover(now time.Time) *Escalation {
	m.hovers = append(m.hovers, now)
	cut := now.Add(-m.cfg.HoverWindow)
	for len(m.hovers) > 0 && m.hovers[0].Before(cut) {
		m.hovers = m.hovers[1:]
	}
	if len(m.hovers) >= m.cfg.HoverCount {
		return m.Observe(SignalHover, now)
	}
	return nil
}

// DecayTick applies one decay step. Higher scores cool slower so a truly
// agitated stretch does not vanish between two signals.
func (m *Monitor) DecayTick(now time.Time) {
	switch {
	case m.score >= 100:
		m.score -= m.cfg.DecayHigh
	case m.score >= 50:
		m.score -= m.cfg.DecayMid
	default:
		m.score -= m.cfg.DecayLow
	}
	if m.score < 0 {
		m.score = 0
	}
	m.tier = m.tierFor()
}

func (m *Monitor) maxScore() float64 {
	if m.cfg.MaxScore <= 0 {
		return 150
	}
	return m.cfg.MaxScore
}

// retier recomputes the tier after a score increase. Only a climb into a
// higher tier notifies, and each tier gets at most one notification per
// cooldown window.
func (m *Monitor) retier(now time.Time) *Escalation {
	newTier := m.tierFor()
	rose := newTier > m.tier
	m.tier = newTier
	if !rose || newTier == 0 {
		return nil
	}

	if last, ok := m.lastNotify[newTier]; ok && now.Sub(last) < m.cfg.NotifyCooldown {
		return nil
	}
	m.lastNotify[newTier] = now
	m.pendingAck = true
	m.agitated = true
	return &Escalation{
		Tier:     newTier,
		Severity: severityFor(newTier),
		Score:    m.score,
	}
}

// tierFor applies the entry thresholds with sticky lower exit bounds.
func (m *Monitor) tierFor() int {
	switch {
	case m.score >= m.cfg.Tier3Enter:
		return 3
	case m.score >= m.cfg.Tier2Enter || (m.tier >= 2 && m.score >= m.cfg.Tier2Hold):
		return 2
	case m.score >= m.cfg.Tier1Enter || (m.tier >= 1 && m.score >= m.cfg.Tier1Hold):
		return 1
	default:
		return 0
	}
}

func (m *Monitor) signalParams(sig Signal) (delta float64, debounce time.Duration) {
	switch sig {
	case SignalHidden:
		return m.cfg.HiddenDelta, m.cfg.HiddenDebounce
	case SignalBlur:
		return m.cfg.BlurDelta, m.cfg.BlurDebounce
	case SignalPointer:
		return m.cfg.PointerDelta, m.cfg.PointerDebounce
	default:
		return m.cfg.HoverDelta, m.cfg.HoverDebounce
	}
}

func severityFor(tier int) companion.Severity {
	switch tier {
	case 1:
		return companion.SeverityMild
	case 2:
		return companion.SeverityModerate
	default:
		return companion.SeveritySevere
	}
}
