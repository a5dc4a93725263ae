package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/teddy-balloons/internal/locale"
)

// MenuModel is the Bubble Tea model for the language picker.
type MenuModel struct {
	items          []locale.Info
	cursor         int
	width          int
	height         int
	opts           Options
	keyMapper      *KeyMapper
	quitting       bool
	selected       *locale.Info
	openScoreboard bool
}

// NewMenuModel creates a new language menu. The cursor starts on the
// remembered language, if any.
func NewMenuModel(opts Options) MenuModel {
	opts = opts.withDefaults()
	items := locale.List()

	cursor := 0
	if opts.Prefs != nil {
		for i, info := range items {
			if info.Code == opts.Prefs.Language() {
				cursor = i
			}
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.remember(selected.Code)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// remember persists the language choice. Failures only cost the
// preselection next time.
func (m MenuModel) remember(code string) {
	if m.opts.Prefs == nil {
		return
	}
	if err := m.opts.Prefs.SetLanguage(code); err != nil {
		m.opts.Logger.Warn("could not save language", "error", err)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  T E D D Y   B A L L O O N S  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your language / Elige tu idioma", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%s)", cursor, item.Name, item.Code)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(hintStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected language, or nil if none selected.
func (m MenuModel) Selected() *locale.Info {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Options returns the session options (screen size may have been updated by resize).
func (m MenuModel) Options() Options {
	return m.opts
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
