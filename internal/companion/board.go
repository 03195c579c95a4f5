package companion

import "time"

// Board holds the companion's most recent notice. The session machine and
// the agitation monitor both post to it from the update loop; views read it
// every frame. Not safe for concurrent use; the UI loop owns it.
type Board struct {
	notice Notice
	setAt  time.Time
	has    bool

	clock func() time.Time
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{clock: time.Now}
}

// Notify replaces the current notice. A newer notice always wins; the
// companion only ever says one thing at a time.
func (b *Board) Notify(n Notice) {
	b.notice = n
	b.setAt = b.clock()
	b.has = true
}

// Current returns the active notice, if it has not yet expired.
func (b *Board) Current(now time.Time) (Notice, bool) {
	if !b.has {
		return Notice{}, false
	}
	if b.notice.Duration > 0 && now.Sub(b.setAt) >= b.notice.Duration {
		b.has = false
		return Notice{}, false
	}
	return b.notice, true
}

// Clear drops the current notice.
func (b *Board) Clear() {
	b.has = false
}
