package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/teddy-balloons/internal/locale"
)

// sessionPage is the screen a session currently shows.
type sessionPage int

const (
	pageMenu sessionPage = iota
	pageGame
	pageScoreboard
)

// SessionModel manages the full flow: language menu -> game -> menu, plus
// the scoreboard. It is the top-level model for local and SSH play.
type SessionModel struct {
	opts       Options
	username   string
	page       sessionPage
	menu       MenuModel
	game       *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session. A known language in
// opts.Language, or else a remembered one, skips the menu.
func NewSessionModel(opts Options, username string) SessionModel {
	opts = opts.withDefaults()
	m := SessionModel{
		opts:     opts,
		username: username,
		menu:     NewMenuModel(opts),
	}

	code := opts.Language
	if code == "" && opts.Prefs != nil {
		code = opts.Prefs.Language()
	}
	if pack, err := locale.Get(code); err == nil {
		m.startGame(pack)
	}
	return m
}

func (m *SessionModel) startGame(pack locale.Pack) {
	gm := NewGameModel(m.opts, pack)
	m.game = &gm
	m.page = pageGame
	m.opts.Logger.Info("game started", "user", m.username, "lang", pack.Code)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.page == pageGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.page {
	case pageGame:
		return m.updateGame(msg)
	case pageScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scoreboard = &sb
		m.page = pageScoreboard
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		pack, err := locale.Get(selected.Code)
		if err != nil {
			// Menu only lists registered languages
			return m, nil
		}
		m.startGame(pack)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.toMenu()
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates when showing the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.menu = NewMenuModel(m.opts)
	m.page = pageMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.page {
	case pageGame:
		return m.game.View()
	case pageScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// Run starts a local Bubble Tea program for one session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts, "local"),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
