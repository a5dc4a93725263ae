package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/teddy-balloons/internal/config"
	"github.com/vovakirdan/teddy-balloons/internal/core"
	"github.com/vovakirdan/teddy-balloons/internal/game"
	"github.com/vovakirdan/teddy-balloons/internal/locale"
	"github.com/vovakirdan/teddy-balloons/internal/platform/frames"
	"github.com/vovakirdan/teddy-balloons/internal/prefs"
	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

// Default logical field, in pixels. The terminal view scales it to fit.
const (
	DefaultFieldW = 800
	DefaultFieldH = 600
)

// Options carries everything a terminal session needs. Store and Prefs may
// be nil: play continues without history or without a remembered language.
type Options struct {
	Store    *storage.Store
	Prefs    *prefs.Store
	Tuning   *config.TeddyConfig
	Runtime  core.RuntimeConfig
	Language string // Preselected language; empty shows the menu
	FieldW   float64
	FieldH   float64
	Logger   *log.Logger
}

func (o Options) withDefaults() Options {
	if o.FieldW <= 0 {
		o.FieldW = DefaultFieldW
	}
	if o.FieldH <= 0 {
		o.FieldH = DefaultFieldH
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = 60
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// gameScreen is the page the game model shows.
type gameScreen int

const (
	screenPlay gameScreen = iota
	screenGameOver
	screenNameForm
)

// run is the mutable state of one game, shared by model copies.
type run struct {
	game     *game.Game
	frames   *frames.Queue
	epoch    time.Time
	over     bool
	result   game.Result // Captured by OnGameOver
	saved    bool
	newBest  bool
	teardown bool
}

// GameModel hosts one language's game: runs, restarts, the game-over
// screen and the name form.
type GameModel struct {
	opts       Options
	pack       locale.Pack
	screen     *core.Screen
	run        *run
	page       gameScreen
	keyMapper  *KeyMapper
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for a language pack.
func NewGameModel(opts Options, pack locale.Pack) GameModel {
	opts = opts.withDefaults()
	m := GameModel{
		opts:      opts,
		pack:      pack,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keyMapper: NewKeyMapper(),
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
	}
	m.run = m.newRun()
	return m
}

// newRun builds a fresh idle run. A zero seed picks a time-based one.
func (m GameModel) newRun() *run {
	seed := m.opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := &run{frames: frames.NewQueue(), epoch: time.Now()}
	r.game = game.New(game.Config{
		Width:  m.opts.FieldW,
		Height: m.opts.FieldH,
		Labels: m.pack.Names,
		OnGameOver: func(score int, labels []string) {
			if r.teardown {
				return
			}
			res := r.game.Result()
			res.Score, res.Labels = score, labels
			r.result = res
			r.over = true
		},
		Tuning:    m.opts.Tuning,
		Seed:      seed,
		Scheduler: r.frames,
	})
	return r
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.page == screenPlay && m.keyMapper.MapMouse(msg) == core.ActionActivate {
			m.run.game.Activate()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input for the current page.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.page {
	case screenPlay:
		switch action {
		case core.ActionActivate:
			m.run.game.Activate()
		case core.ActionBack:
			m.leave()
			m.backToMenu = true
		}

	case screenGameOver:
		switch action {
		case core.ActionRestart:
			m.run = m.newRun()
			m.page = screenPlay
		case core.ActionSaveNames:
			m.page = screenNameForm
		case core.ActionBack:
			m.backToMenu = true
		}

	case screenNameForm:
		switch action {
		case core.ActionActivate, core.ActionBack:
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleTick fires pending frames and moves to the game-over page once
// the run has ended.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	r := m.run
	r.frames.Tick(now.Sub(r.epoch))

	if r.over && m.page == screenPlay {
		m.page = screenGameOver
		m.saveRun()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveRun records the finished run once. Storage errors are logged and
// otherwise ignored.
func (m GameModel) saveRun() {
	r := m.run
	if r.saved {
		return
	}
	r.saved = true

	res := r.result
	m.opts.Logger.Info("run finished",
		"lang", m.pack.Code,
		"score", res.Score,
		"reason", res.Reason,
		"ticks", res.Ticks,
	)

	if m.opts.Store == nil {
		return
	}

	best, err := m.opts.Store.HighScore()
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "error", err)
	} else {
		r.newBest = res.Score > best
	}

	id, err := m.opts.Store.SaveRun(storage.Run{
		Language: m.pack.Code,
		Score:    res.Score,
		Reason:   res.Reason.String(),
		Ticks:    res.Ticks,
		Duration: res.Elapsed,
		Labels:   res.Labels,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.opts.Logger.Debug("run saved", "id", id)
}

// leave tears the current run down without reporting it as a game over.
func (m GameModel) leave() {
	m.run.teardown = true
	m.run.game.Destroy()
}

// View renders the current page.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.page {
	case screenGameOver:
		return m.viewGameOver()
	case screenNameForm:
		return m.viewNameForm()
	}

	DrawField(m.screen, m.run.game.Snapshot(), m.pack.Texts)
	return RenderScreen(m.screen)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorPink.Hex()))
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorGold.Hex()))
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(core.ColorPink.Hex())).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(core.ColorSkyBlue.Hex())).
			Padding(1, 3).
			Align(lipgloss.Center)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m GameModel) viewGameOver() string {
	res := m.run.result
	t := m.pack.Texts

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.GameOverTitle))
	b.WriteString("\n\n")
	b.WriteString(t.GameOverMessage)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s: %s", t.ScoreLabel, scoreStyle.Render(fmt.Sprint(res.Score))))
	if m.run.newBest {
		b.WriteString("  ")
		b.WriteString(badgeStyle.Render("NEW BEST"))
	}
	b.WriteString("\n\n")
	b.WriteString(t.CollectedNamesLabel)
	b.WriteString("\n")
	b.WriteString(renderBadges(res.Labels, m.cardWidth()))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("R: %s  |  S: %s  |  B: menu  |  Q: quit", t.PlayAgain, t.SaveNames)))

	return m.place(b.String())
}

func (m GameModel) viewNameForm() string {
	res := m.run.result
	t := m.pack.Texts

	var b strings.Builder
	b.WriteString(badgeStyle.Render(t.FormBadge))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(t.FormTitle))
	b.WriteString("\n\n")
	b.WriteString(t.ScoreMessage(res.Score))
	if len(res.Labels) > 0 {
		b.WriteString("\n\n")
		b.WriteString(renderBadges(res.Labels, m.cardWidth()))
	}
	b.WriteString("\n\n")
	b.WriteString(t.FormFooter)
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Enter: done"))

	return m.place(b.String())
}

func (m GameModel) cardWidth() int {
	w := m.width - 10
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m GameModel) place(content string) string {
	card := cardStyle.Width(m.cardWidth()).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// renderBadges lays labels out as badges, wrapping at width.
func renderBadges(labels []string, width int) string {
	if len(labels) == 0 {
		return hintStyle.Render("-")
	}

	var lines []string
	var line []string
	lineW := 0
	for _, l := range labels {
		badge := badgeStyle.Render(l)
		w := lipgloss.Width(badge)
		if lineW > 0 && lineW+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineW = nil, 0
		}
		if lineW > 0 {
			lineW++
		}
		line = append(line, badge)
		lineW += w
	}
	lines = append(lines, strings.Join(line, " "))
	return strings.Join(lines, "\n")
}

// Language returns the code of the language being played.
func (m GameModel) Language() string {
	return m.pack.Code
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
