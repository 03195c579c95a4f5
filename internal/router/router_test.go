package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ivelina/tendril/internal/screen"
)

type fakeScreen struct {
	name    string
	inited  bool
	gotMsgs []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.gotMsgs = append(f.gotMsgs, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func wantActive(t *testing.T, r *Router, name string) {
	t.Helper()
	if got := r.Active().Title(); got != name {
		t.Fatalf("active screen = %q, want %q", got, name)
	}
}

func TestPushStacksAndInits(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	sess := &fakeScreen{name: "session"}
	r.Push(sess)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	wantActive(t, r, "session")
	if !sess.inited {
		t.Error("pushed screen never initialized")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "session"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	wantActive(t, r, "home")
}

func TestPopKeepsTheLastScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want the home screen to survive", r.Depth())
	}
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "session"})

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	wantActive(t, r, "summary")
	if !summary.inited {
		t.Error("replacement screen never initialized")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "session"}})
	wantActive(t, r, "session")

	r.Update(ReplaceScreenMsg{Screen: &fakeScreen{name: "summary"}})
	wantActive(t, r, "summary")
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}

	r.Update(PopScreenMsg{})
	wantActive(t, r, "home")
}

func TestUpdateReachesOnlyTheActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	sess := &fakeScreen{name: "session"}
	r := New(home)
	r.Push(sess)

	r.Update(tea.FocusMsg{})

	if len(sess.gotMsgs) != 1 {
		t.Errorf("active screen saw %d messages, want 1", len(sess.gotMsgs))
	}
	if len(home.gotMsgs) != 0 {
		t.Errorf("buried screen saw %d messages, want 0", len(home.gotMsgs))
	}
}
