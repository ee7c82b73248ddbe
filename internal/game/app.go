// Package game is the page shell: it owns the components shared across pages,
// routes between them and implements ebiten.Game.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/audio"
	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/content"
	"github.com/iburimskiy/zen-garden/internal/pages"
	"github.com/iburimskiy/zen-garden/internal/quotes"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

const (
	tickSeconds = 1.0 / config.TicksPerSec
	volumeStep  = 0.1
)

// Output is the sound output the shell drives directly
type Output interface {
	audio.Output
	SetVolume(v float64)
	Level() float64
	Close()
}

var pageKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// App implements ebiten.Game
type App struct {
	opts     config.Options
	out      Output
	settings *config.SettingsStore
	chimes   *audio.ChimePlayer
	drone    *audio.DronePlayer

	deps   pages.Deps
	router *Router
	nav    *ui.NavBar
	footer *footer
	input  ui.InputReader

	droneTime float64 // seconds since the drone was switched on
	hue       float64
}

// NewApp opens the speaker and settings storage and mounts the start page.
func NewApp(opts config.Options) (*App, error) {
	out := audio.NewSpeaker(opts.SampleRate, opts.Mute)
	settings := config.OpenSettingsStore(opts.AppName, !opts.NoPersist)
	return newApp(opts, out, settings, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newApp(opts config.Options, out Output, settings *config.SettingsStore, rng *rand.Rand) (*App, error) {
	txt, err := content.LoadPages()
	if err != nil {
		return nil, err
	}
	layout, err := content.LoadScene()
	if err != nil {
		return nil, err
	}
	qs, err := quotes.Load(rng)
	if err != nil {
		return nil, err
	}

	st := settings.Settings()
	out.SetVolume(st.MasterVolume)

	droneCfg := audio.DefaultDroneConfig()
	droneCfg.WindChimes = opts.WindChimes && st.WindChimes

	a := &App{
		opts:     opts,
		out:      out,
		settings: settings,
		chimes:   audio.NewChimePlayer(out),
		drone:    audio.NewDronePlayer(out, droneCfg, rng),
		nav:      ui.NewNavBar(config.WindowWidth, pages.Labels),
		footer:   newFooter(),
	}
	a.deps = pages.Deps{
		Copy:     txt,
		Layout:   layout,
		Quotes:   qs,
		Chimes:   a.chimes,
		Settings: settings,
		Rng:      rng,
		View:     pages.ContentArea(),
	}
	a.router = NewRouter(pages.Names, a.newPage)

	if err := a.router.Go(opts.StartPage); err != nil {
		log.Printf("[App] Warning: start page: %v (falling back to home)", err)
		if err := a.router.Go(pages.Names[0]); err != nil {
			return nil, err
		}
	}
	a.nav.SetActive(a.router.Index())

	if st.AmbientOnLaunch {
		a.drone.Start()
	}
	a.refreshFooter()
	log.Printf("[App] Ready on %s (%d quotes)", a.router.CurrentName(), qs.Len())
	return a, nil
}

func (a *App) newPage(name string) (Page, error) {
	switch name {
	case "home":
		return pages.NewHome(a.deps)
	case "gallery":
		return pages.NewGallery(a.deps), nil
	case "meditation":
		return pages.NewMeditation(a.deps), nil
	case "about":
		return pages.NewAbout(a.deps), nil
	case "contact":
		return pages.NewContact(a.deps, pages.ZenityPrompter{}), nil
	}
	return nil, fmt.Errorf("no page named %q", name)
}

func (a *App) Router() *Router            { return a.router }
func (a *App) Drone() *audio.DronePlayer  { return a.drone }
func (a *App) Chimes() *audio.ChimePlayer { return a.chimes }

// Navigate switches to the i-th page. A page that fails to build is logged
// and the current page stays.
func (a *App) Navigate(i int) {
	if err := a.router.GoIndex(i); err != nil {
		log.Printf("[App] Navigation failed: %v", err)
	}
	a.nav.SetActive(a.router.Index())
}

// ToggleDrone switches the ambient drone and remembers the choice for the
// next launch.
func (a *App) ToggleDrone() {
	a.drone.Toggle()
	a.settings.SetAmbientOnLaunch(a.drone.Active())
	a.refreshFooter()
}

// ToggleWindChimes flips the wind chime setting. Chimes stay off while they
// are disabled in the environment.
func (a *App) ToggleWindChimes() {
	on := !a.settings.Settings().WindChimes
	a.settings.SetWindChimes(on)
	a.drone.SetWindChimes(a.opts.WindChimes && on)
	a.refreshFooter()
}

// AdjustVolume changes the master volume by delta.
func (a *App) AdjustVolume(delta float64) {
	a.settings.SetMasterVolume(a.settings.Settings().MasterVolume + delta)
	a.out.SetVolume(a.settings.Settings().MasterVolume)
}

func (a *App) refreshFooter() { a.footer.refresh(a.footerState()) }

func (a *App) footerState() footerState {
	st := a.settings.Settings()
	return footerState{
		droneOn:    a.drone.Active(),
		droneTime:  time.Duration(a.droneTime * float64(time.Second)),
		windChimes: a.opts.WindChimes && st.WindChimes,
		level:      a.out.Level(),
		volume:     st.MasterVolume,
		hue:        a.hue,
	}
}

func (a *App) Update() error {
	in := a.input.Read()
	if in.KeyPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return a.update(tickSeconds, in)
}

func (a *App) update(dt float64, in ui.Input) error {
	if in.KeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for i, k := range pageKeys {
		if in.KeyPressed(k) {
			a.Navigate(i)
		}
	}
	if i := a.nav.Update(in); i >= 0 {
		a.Navigate(i)
	}

	if a.footer.droneBtn.Update(in) || in.KeyPressed(ebiten.KeyM) {
		a.ToggleDrone()
	}
	if a.footer.chimesBtn.Update(in) {
		a.ToggleWindChimes()
	}
	if in.KeyPressed(ebiten.KeyMinus) {
		a.AdjustVolume(-volumeStep)
	}
	if in.KeyPressed(ebiten.KeyEqual) {
		a.AdjustVolume(volumeStep)
	}

	a.router.Update(dt, in)

	a.drone.Update(dt)
	if a.drone.Active() {
		a.droneTime += dt
	} else {
		a.droneTime = 0
	}
	a.hue += dt * 20
	if a.hue >= 360 {
		a.hue -= 360
	}
	a.refreshFooter()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(ui.Background)
	a.router.Draw(screen)
	a.nav.Draw(screen)
	a.footer.draw(screen, a.footerState())
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close unmounts the page, silences all sound and saves the settings.
func (a *App) Close() error {
	a.router.Close()
	a.drone.Close()
	a.out.Close()
	if err := a.settings.Save(); err != nil {
		return err
	}
	log.Printf("[App] Closed")
	return nil
}
