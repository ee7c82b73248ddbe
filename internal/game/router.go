package game

import (
	"fmt"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/ui"
)

// Page is one routed screen. Only the current page is updated and drawn.
type Page interface {
	Update(dt float64, in ui.Input)
	Draw(screen *ebiten.Image)
}

// Unmounter is implemented by pages that hold state to release on navigation.
type Unmounter interface {
	Unmount()
}

// PageFactory builds a fresh page by name
type PageFactory func(name string) (Page, error)

// Router owns the current page. Navigating builds the new page before the old
// one is unmounted, so a failed build leaves the current page in place.
type Router struct {
	names   []string
	factory PageFactory
	current Page
	index   int
}

// NewRouter creates a router with no page mounted; use Go for the first one.
func NewRouter(names []string, factory PageFactory) *Router {
	return &Router{names: names, factory: factory, index: -1}
}

// Go mounts the page called name. Going to the current page does nothing.
func (r *Router) Go(name string) error {
	i := slices.Index(r.names, name)
	if i < 0 {
		return fmt.Errorf("unknown page %q", name)
	}
	return r.GoIndex(i)
}

// GoIndex mounts the i-th page in navigation order.
func (r *Router) GoIndex(i int) error {
	if i < 0 || i >= len(r.names) {
		return fmt.Errorf("page index %d out of range", i)
	}
	if i == r.index && r.current != nil {
		return nil
	}
	log.Printf("[Router] Loading page: %s", r.names[i])

	page, err := r.factory(r.names[i])
	if err != nil {
		return fmt.Errorf("build page %s: %w", r.names[i], err)
	}
	r.unmount()
	r.current = page
	r.index = i
	return nil
}

func (r *Router) unmount() {
	if u, ok := r.current.(Unmounter); ok {
		u.Unmount()
	}
	r.current = nil
}

// Current is the mounted page, or nil.
func (r *Router) Current() Page { return r.current }

// Index is the position of the mounted page in navigation order, or -1.
func (r *Router) Index() int { return r.index }

func (r *Router) CurrentName() string {
	if r.index < 0 {
		return ""
	}
	return r.names[r.index]
}

func (r *Router) Update(dt float64, in ui.Input) {
	if r.current != nil {
		r.current.Update(dt, in)
	}
}

func (r *Router) Draw(screen *ebiten.Image) {
	if r.current != nil {
		r.current.Draw(screen)
	}
}

// Close unmounts the current page.
func (r *Router) Close() {
	r.unmount()
	r.index = -1
}
