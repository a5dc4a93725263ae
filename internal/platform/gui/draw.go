package gui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/teddy-balloons/internal/core"
	"github.com/vovakirdan/teddy-balloons/internal/game"
)

// debugGlyphW is the advance of ebitenutil's debug font.
const debugGlyphW = 6

func rgba(c core.Color, alpha float64) color.RGBA {
	v := c.RGB()
	a := uint8(alpha * 255)
	// premultiplied
	return color.RGBA{
		R: uint8(float64(v.R) * alpha),
		G: uint8(float64(v.G) * alpha),
		B: uint8(float64(v.B) * alpha),
		A: a,
	}
}

var (
	panelColor  = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	buttonColor = rgba(core.ColorPink, 1)
)

// Draw renders the current page.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorSky, 1))

	switch a.page {
	case pageLanguage:
		centerText(screen, "TEDDY BALLOONS", FieldH/2-110)
		centerText(screen, "Choose your language / Elige tu idioma", FieldH/2-80)
		drawButtons(screen, a.buttons)
		return
	}

	snap := a.game.Snapshot()
	drawField(screen, snap)
	ebitenutil.DebugPrintAt(screen, scoreLine(a.pack.Texts.ScoreLabel, snap.Score), 10, 10)

	t := a.pack.Texts
	switch a.page {
	case pagePlay:
		if snap.Phase == game.PhaseIdle {
			drawPanel(screen, FieldH/2-70, 120)
			centerText(screen, t.TapToStart, FieldH/2-50)
			centerText(screen, t.HelpTeddy, FieldH/2-20)
			centerText(screen, t.ClickTap, FieldH/2)
		}

	case pageGameOver:
		drawPanel(screen, 60, FieldH-120)
		y := 90
		centerText(screen, t.GameOverTitle, y)
		for _, line := range wrap(t.GameOverMessage, 60) {
			y += 24
			centerText(screen, line, y)
		}
		y += 36
		centerText(screen, scoreLine(t.ScoreLabel, snap.Score), y)
		y += 30
		centerText(screen, t.CollectedNamesLabel, y)
		for _, line := range wrap(strings.Join(snap.Collected, "  "), 70) {
			y += 20
			centerText(screen, line, y)
		}
		drawButtons(screen, a.buttons)

	case pageNameForm:
		drawPanel(screen, 80, FieldH-160)
		y := 110
		centerText(screen, t.FormBadge, y)
		y += 30
		centerText(screen, t.FormTitle, y)
		for _, line := range wrap(t.ScoreMessage(snap.Score), 60) {
			y += 24
			centerText(screen, line, y)
		}
		for _, line := range wrap(strings.Join(snap.Collected, "  "), 70) {
			y += 20
			centerText(screen, line, y)
		}
		centerText(screen, t.FormFooter, FieldH-120)
	}
}

// drawField paints clouds, balloons and the bear.
func drawField(screen *ebiten.Image, snap game.Snapshot) {
	cloud := rgba(core.ColorWhite, 1)
	w := float32(snap.ObstacleWidth)
	for _, o := range snap.Obstacles {
		x := float32(o.X)
		vector.DrawFilledRect(screen, x, 0, w, float32(o.GapStart), cloud, true)
		vector.DrawFilledRect(screen, x, float32(o.GapEnd()), w, float32(snap.Height-o.GapEnd()), cloud, true)
	}

	for _, b := range snap.Balloons {
		alpha := 1.0
		if b.Collected {
			alpha = core.ClampF(b.Opacity, 0, 1)
		}
		cx, cy := float32(b.X), float32(b.Y)
		vector.StrokeLine(screen, cx, cy+float32(b.Radius), cx, cy+float32(b.Radius)+30, 1, rgba(core.ColorGray, alpha), true)
		vector.DrawFilledCircle(screen, cx, cy, float32(b.Radius), rgba(b.Color, alpha), true)
		if !b.Collected {
			ebitenutil.DebugPrintAt(screen, b.Label, int(b.X)-len(b.Label)*debugGlyphW/2, int(b.Y)-8)
		}
	}

	drawBear(screen, snap.Avatar)
}

func drawBear(screen *ebiten.Image, a game.Avatar) {
	fur := rgba(core.ColorBrown, 1)
	r := float32(a.Size / 2)
	cx, cy := float32(a.X)+r, float32(a.Y)+r
	vector.DrawFilledCircle(screen, cx-r*0.7, cy-r*0.7, r*0.35, fur, true)
	vector.DrawFilledCircle(screen, cx+r*0.7, cy-r*0.7, r*0.35, fur, true)
	vector.DrawFilledCircle(screen, cx, cy, r, fur, true)
	vector.DrawFilledCircle(screen, cx, cy+r*0.25, r*0.35, rgba(core.ColorSalmon, 1), true)
	eye := color.RGBA{A: 255}
	vector.DrawFilledCircle(screen, cx-r*0.35, cy-r*0.2, r*0.1, eye, true)
	vector.DrawFilledCircle(screen, cx+r*0.35, cy-r*0.2, r*0.1, eye, true)
}

func drawPanel(screen *ebiten.Image, top, height float32) {
	vector.DrawFilledRect(screen, 60, top, FieldW-120, height, panelColor, true)
}

func drawButtons(screen *ebiten.Image, buttons []button) {
	for _, b := range buttons {
		vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), buttonColor, true)
		ebitenutil.DebugPrintAt(screen, b.label,
			int(b.x+b.w/2)-len([]rune(b.label))*debugGlyphW/2,
			int(b.y+b.h/2)-8)
	}
}

func centerText(screen *ebiten.Image, text string, y int) {
	x := FieldW/2 - len([]rune(text))*debugGlyphW/2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
