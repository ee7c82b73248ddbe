package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/ui"
)

// mockPage records the calls the router makes.
type mockPage struct {
	name      string
	updates   int
	draws     int
	unmounted bool
	deltaTime float64
}

func (m *mockPage) Update(dt float64, in ui.Input) {
	m.updates++
	m.deltaTime = dt
}

func (m *mockPage) Draw(screen *ebiten.Image) { m.draws++ }
func (m *mockPage) Unmount()                  { m.unmounted = true }

type mockFactory struct {
	built []*mockPage
	fail  map[string]bool
}

func (f *mockFactory) build(name string) (Page, error) {
	if f.fail[name] {
		return nil, errors.New("boom")
	}
	p := &mockPage{name: name}
	f.built = append(f.built, p)
	return p, nil
}

func newTestRouter() (*Router, *mockFactory) {
	f := &mockFactory{fail: map[string]bool{}}
	return NewRouter([]string{"a", "b", "c"}, f.build), f
}

func TestNewRouter(t *testing.T) {
	r, _ := newTestRouter()
	if r.Current() != nil || r.Index() != -1 || r.CurrentName() != "" {
		t.Error("new router should have no page mounted")
	}
	r.Update(0.016, ui.Input{}) // no page, must not panic
	r.Draw(nil)
}

func TestRouterGo(t *testing.T) {
	r, f := newTestRouter()
	if err := r.Go("b"); err != nil {
		t.Fatalf("Go: %v", err)
	}
	if r.CurrentName() != "b" || r.Index() != 1 {
		t.Fatalf("current = %q (%d), want b (1)", r.CurrentName(), r.Index())
	}

	r.Update(0.016, ui.Input{})
	if f.built[0].updates != 1 || f.built[0].deltaTime != 0.016 {
		t.Errorf("page update = %d calls, dt %.3f", f.built[0].updates, f.built[0].deltaTime)
	}

	if err := r.GoIndex(2); err != nil {
		t.Fatalf("GoIndex: %v", err)
	}
	if !f.built[0].unmounted {
		t.Error("previous page was not unmounted")
	}
	if f.built[1].unmounted {
		t.Error("new page unmounted")
	}
}

func TestRouterSamePageKeepsState(t *testing.T) {
	r, f := newTestRouter()
	_ = r.Go("a")
	_ = r.Go("a")
	if len(f.built) != 1 {
		t.Errorf("built %d pages, want 1", len(f.built))
	}
}

func TestRouterErrors(t *testing.T) {
	r, f := newTestRouter()
	_ = r.Go("a")

	if err := r.Go("zzz"); err == nil {
		t.Error("unknown page should fail")
	}
	if err := r.GoIndex(3); err == nil {
		t.Error("out of range index should fail")
	}

	f.fail["c"] = true
	if err := r.Go("c"); err == nil {
		t.Error("failed build should be reported")
	}
	if r.CurrentName() != "a" || f.built[0].unmounted {
		t.Error("failed navigation should keep the current page mounted")
	}
}

func TestRouterClose(t *testing.T) {
	r, f := newTestRouter()
	_ = r.Go("a")
	r.Close()
	if !f.built[0].unmounted || r.Current() != nil || r.Index() != -1 {
		t.Error("Close should unmount and clear the current page")
	}
}
