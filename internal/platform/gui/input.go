package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer is one frame's press: where it happened, if anywhere.
type pointer struct {
	pressed bool
	x, y    int
}

// readPointer collects this frame's press. Touch start and mouse press
// are the same stimulus; when both fire in one frame only the first
// touch counts, so a tap never activates twice.
func readPointer() pointer {
	touches := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return pointer{pressed: true, x: x, y: y}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return pointer{pressed: true, x: x, y: y}
	}
	return pointer{}
}

// activateKeyPressed reports a keyboard flap.
func activateKeyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)
}

// button is a clickable rectangle in field coordinates.
type button struct {
	x, y, w, h float64
	label      string
}

func (b button) contains(px, py int) bool {
	x, y := float64(px), float64(py)
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// buttonColumn lays out labels as centered buttons stacked from top.
func buttonColumn(fieldW, top, w, h, gap float64, labels ...string) []button {
	out := make([]button, len(labels))
	for i, l := range labels {
		out[i] = button{
			x:     (fieldW - w) / 2,
			y:     top + float64(i)*(h+gap),
			w:     w,
			h:     h,
			label: l,
		}
	}
	return out
}

// hit returns the index of the button under the pointer, or -1.
func hit(buttons []button, p pointer) int {
	if !p.pressed {
		return -1
	}
	for i, b := range buttons {
		if b.contains(p.x, p.y) {
			return i
		}
	}
	return -1
}
