package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/teddy-balloons/internal/core"
	"github.com/vovakirdan/teddy-balloons/internal/game"
	"github.com/vovakirdan/teddy-balloons/internal/locale"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}

func init() {
	for c := core.ColorWhite; c <= core.ColorBrown; c++ {
		colorStyles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
}

// Field glyphs.
const (
	cloudRune     = '█'
	balloonRune   = 'O'
	fadingRune    = 'o'
	bearSprite    = "ʕ•ᴥ•ʔ"
	statusRows    = 1
	minFieldCells = 4
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellMapper projects field pixels onto terminal cells.
type cellMapper struct {
	sx, sy float64
	cols   int
	rows   int
}

func newCellMapper(snap game.Snapshot, cols, rows int) cellMapper {
	return cellMapper{
		sx:   float64(cols) / snap.Width,
		sy:   float64(rows) / snap.Height,
		cols: cols,
		rows: rows,
	}
}

func (m cellMapper) x(px float64) int { return int(math.Floor(px * m.sx)) }
func (m cellMapper) y(py float64) int { return int(math.Floor(py * m.sy)) }

// DrawField rasterizes a snapshot onto the screen: clouds, balloons with
// their labels, the bear and a status line. In PhaseIdle the start
// overlay is drawn on top.
func DrawField(s *core.Screen, snap game.Snapshot, texts locale.Texts) {
	s.Clear()

	rows := s.Height() - statusRows
	if rows < minFieldCells || s.Width() < minFieldCells {
		s.DrawText(0, 0, "terminal too small", core.ColorGray)
		return
	}
	m := newCellMapper(snap, s.Width(), rows)

	for _, o := range snap.Obstacles {
		x0 := m.x(o.X)
		x1 := int(math.Ceil((o.X + snap.ObstacleWidth) * m.sx))
		gapTop := m.y(o.GapStart)
		gapBottom := int(math.Ceil(o.GapEnd() * m.sy))
		s.FillRect(x0, 0, x1-x0, gapTop, cloudRune, core.ColorWhite)
		s.FillRect(x0, gapBottom, x1-x0, rows-gapBottom, cloudRune, core.ColorWhite)
	}

	for _, b := range snap.Balloons {
		cx, cy := m.x(b.X), m.y(b.Y)
		if !b.Collected {
			s.SetCell(cx, cy, balloonRune, b.Color)
			s.DrawText(cx+2, cy, b.Label, b.Color)
			continue
		}
		if b.Opacity > 0.5 {
			s.SetCell(cx, cy, fadingRune, b.Color)
		} else {
			s.SetCell(cx, cy, fadingRune, core.ColorGray)
		}
	}

	a := snap.Avatar
	s.DrawText(m.x(a.X), m.y(a.Y+a.Size/2), bearSprite, core.ColorBrown)

	status := fmt.Sprintf(" %s: %d ", texts.ScoreLabel, snap.Score)
	s.DrawText(0, rows, status, core.ColorGold)

	if snap.Phase == game.PhaseIdle {
		mid := rows / 2
		cx := s.Width() / 2
		s.DrawTextCentered(cx, mid-2, texts.TapToStart, core.ColorPink)
		s.DrawTextCentered(cx, mid, texts.HelpTeddy, core.ColorWhite)
		s.DrawTextCentered(cx, mid+1, texts.ClickTap, core.ColorGray)
	}
}
