package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

// Scoreboard layout constants
const (
	maxRows       = 100
	namesColWidth = 30
)

// boardView is one of the scoreboard tabs.
type boardView int

const (
	viewBestRuns boardView = iota
	viewRecentRuns
	viewFavoriteNames
	boardViewCount
)

func (v boardView) title() string {
	switch v {
	case viewRecentRuns:
		return "RECENT RUNS"
	case viewFavoriteNames:
		return "FAVORITE NAMES"
	}
	return "BEST RUNS"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store     *storage.Store
	view      boardView
	runs      []storage.Run
	recent    []storage.Run
	names     []storage.LabelCount
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads every tab from storage.
func (m *ScoreboardModel) load() {
	m.runs, m.recent, m.names, m.loadErr = nil, nil, nil, nil
	if m.store == nil {
		return
	}

	runs, err := m.store.TopRuns(maxRows)
	if err != nil {
		m.loadErr = err
		return
	}
	recent, err := m.store.RecentRuns(maxRows)
	if err != nil {
		m.loadErr = err
		return
	}
	names, err := m.store.LabelCounts(maxRows)
	if err != nil {
		m.loadErr = err
		return
	}
	m.runs, m.recent, m.names = runs, recent, names
}

// createTable creates a table with the columns of the current view.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.view == viewFavoriteNames {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 20},
			{Title: "Collected", Width: 10},
		}
	} else {
		namesW := m.width - 4 - 6 - 8 - 6 - 14 - 10
		if namesW > namesColWidth {
			namesW = namesColWidth
		}
		if namesW < 10 {
			namesW = 10
		}
		first := "Rank"
		if m.view == viewRecentRuns {
			first = "#"
		}
		columns = []table.Column{
			{Title: first, Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Lang", Width: 6},
			{Title: "Date", Width: 14},
			{Title: "Names", Width: namesW},
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == viewFavoriteNames {
		rows = make([]table.Row, len(m.names))
		for i, n := range m.names {
			rows[i] = table.Row{fmt.Sprintf("#%d", i+1), n.Label, fmt.Sprintf("%d", n.Count)}
		}
	} else {
		runs := m.runs
		if m.view == viewRecentRuns {
			runs = m.recent
		}
		rows = make([]table.Row, len(runs))
		for i, r := range runs {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", r.Score),
				r.Language,
				r.CreatedAt.Format("Jan 02 15:04"),
				strings.Join(r.Labels, ", "),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchView(delta int) {
	m.view = boardView((int(m.view) + delta + int(boardViewCount)) % int(boardViewCount))
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("TEDDY BALLOONS - %s", m.view.title())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render(fmt.Sprintf("Could not load history:\n%v", m.loadErr))
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to fill the board!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
