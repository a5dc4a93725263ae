// Package gui hosts the teddy game in an ebiten window (desktop, mobile
// or browser through WebAssembly). Pointer press and touch start both
// flap; the ebiten update loop drives the frame queue.
package gui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/teddy-balloons/internal/config"
	"github.com/vovakirdan/teddy-balloons/internal/game"
	"github.com/vovakirdan/teddy-balloons/internal/locale"
	"github.com/vovakirdan/teddy-balloons/internal/platform/frames"
	"github.com/vovakirdan/teddy-balloons/internal/prefs"
	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

// Field size in pixels; also the ebiten logical screen.
const (
	FieldW = 800
	FieldH = 600
)

// page is the screen the app currently shows.
type page int

const (
	pageLanguage page = iota
	pagePlay
	pageGameOver
	pageNameForm
)

// Options configures an App. Store and Prefs may be nil.
type Options struct {
	Store    *storage.Store
	Prefs    *prefs.Store
	Tuning   *config.TeddyConfig
	Language string
	Seed     int64
	Logger   *log.Logger
}

// App implements ebiten.Game.
type App struct {
	opts   Options
	logger *log.Logger

	page    page
	pack    locale.Pack
	langs   []locale.Info
	buttons []button

	frames *frames.Queue
	clock  time.Duration
	game   *game.Game
	over   bool
	leave  bool
}

// NewApp creates the app. A known language in opts.Language, or else a
// remembered one, skips the language page.
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	a := &App{
		opts:   opts,
		logger: opts.Logger,
		langs:  locale.List(),
	}

	code := opts.Language
	if code == "" && opts.Prefs != nil {
		code = opts.Prefs.Language()
	}
	if pack, err := locale.Get(code); err == nil {
		a.startGame(pack)
	} else {
		a.showLanguages()
	}
	return a
}

func (a *App) showLanguages() {
	labels := make([]string, len(a.langs))
	for i, l := range a.langs {
		labels[i] = l.Name
	}
	a.buttons = buttonColumn(FieldW, FieldH/2-40, 240, 50, 20, labels...)
	a.page = pageLanguage
}

// startGame creates a fresh idle run for pack.
func (a *App) startGame(pack locale.Pack) {
	if a.game != nil {
		a.leave = true
		a.game.Destroy()
	}

	seed := a.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.pack = pack
	a.frames = frames.NewQueue()
	a.frames.Tick(a.clock)
	a.over = false
	a.leave = false
	a.game = game.New(game.Config{
		Width:      FieldW,
		Height:     FieldH,
		Labels:     pack.Names,
		OnGameOver: a.onGameOver,
		Tuning:     a.opts.Tuning,
		Seed:       seed,
		Scheduler:  a.frames,
	})
	a.buttons = nil
	a.page = pagePlay
}

// onGameOver is the run's completion callback. It fires inside a frame.
func (a *App) onGameOver(score int, labels []string) {
	if a.leave {
		return
	}
	a.over = true

	res := a.game.Result()
	a.logger.Info("run finished", "lang", a.pack.Code, "score", score, "reason", res.Reason)

	if a.opts.Store != nil {
		_, err := a.opts.Store.SaveRun(storage.Run{
			Language: a.pack.Code,
			Score:    score,
			Reason:   res.Reason.String(),
			Ticks:    res.Ticks,
			Duration: res.Elapsed,
			Labels:   labels,
		})
		if err != nil {
			a.logger.Warn("could not save run", "error", err)
		}
	}
}

// Update advances the host clock by one tick and handles input.
func (a *App) Update() error {
	a.clock += time.Second / time.Duration(ebiten.TPS())
	p := readPointer()

	switch a.page {
	case pageLanguage:
		if i := hit(a.buttons, p); i >= 0 {
			a.chooseLanguage(a.langs[i].Code)
		}

	case pagePlay:
		if p.pressed || activateKeyPressed() {
			a.game.Activate()
		}
		a.frames.Tick(a.clock)
		if a.over {
			a.showGameOver()
		}

	case pageGameOver:
		switch hit(a.buttons, p) {
		case 0:
			a.startGame(a.pack)
		case 1:
			a.buttons = nil
			a.page = pageNameForm
		}

	case pageNameForm:
		if p.pressed {
			a.showLanguages()
		}
	}
	return nil
}

func (a *App) chooseLanguage(code string) {
	pack, err := locale.Get(code)
	if err != nil {
		a.logger.Error("unknown language", "code", code)
		return
	}
	if a.opts.Prefs != nil {
		if err := a.opts.Prefs.SetLanguage(code); err != nil {
			a.logger.Warn("could not save language", "error", err)
		}
	}
	a.startGame(pack)
}

func (a *App) showGameOver() {
	t := a.pack.Texts
	a.buttons = buttonColumn(FieldW, FieldH-170, 280, 50, 16, t.PlayAgain, t.SaveNames)
	a.page = pageGameOver
}

// Close tears down the current run without reporting it.
func (a *App) Close() {
	if a.game != nil {
		a.leave = true
		a.game.Destroy()
	}
}

// Layout returns the fixed field size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return FieldW, FieldH
}

// wrap splits text into lines of at most width runes, on spaces.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func scoreLine(label string, score int) string {
	return fmt.Sprintf("%s: %d", label, score)
}

var _ ebiten.Game = (*App)(nil)
