package gui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/teddy-balloons/internal/game"
	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

func TestButtonColumn(t *testing.T) {
	buttons := buttonColumn(800, 100, 200, 50, 10, "a", "b")
	if len(buttons) != 2 {
		t.Fatalf("expected 2 buttons, got %d", len(buttons))
	}
	if buttons[0].x != 300 || buttons[1].y != 160 {
		t.Errorf("unexpected layout %+v", buttons)
	}

	tests := []struct {
		p    pointer
		want int
	}{
		{pointer{pressed: true, x: 310, y: 110}, 0},
		{pointer{pressed: true, x: 310, y: 170}, 1},
		{pointer{pressed: true, x: 310, y: 155}, -1}, // in the gap
		{pointer{pressed: false, x: 310, y: 110}, -1},
	}
	for _, tc := range tests {
		if got := hit(buttons, tc.p); got != tc.want {
			t.Errorf("hit(%+v) = %d, expected %d", tc.p, got, tc.want)
		}
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("wrap = %q, expected %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}
	if len(wrap("", 10)) != 0 {
		t.Error("empty text should give no lines")
	}
}

func TestNewAppLanguageSelection(t *testing.T) {
	quiet := log.New(io.Discard)

	a := NewApp(Options{Logger: quiet})
	if a.page != pageLanguage {
		t.Fatalf("expected language page, got %v", a.page)
	}
	if len(a.buttons) != len(a.langs) {
		t.Errorf("expected one button per language, got %d", len(a.buttons))
	}

	b := NewApp(Options{Language: "es", Logger: quiet})
	if b.page != pagePlay || b.pack.Code != "es" {
		t.Errorf("preselected language should start play, got page %v lang %q", b.page, b.pack.Code)
	}
}

func TestAppSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	a := NewApp(Options{Store: store, Language: "en", Seed: 3, Logger: log.New(io.Discard)})
	a.game.Activate()
	for i := 0; i < 600 && a.game.Phase() != game.PhaseEnded; i++ {
		a.clock += 16_000_000
		a.frames.Tick(a.clock)
	}
	if !a.over {
		t.Fatal("run should be over without input")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Language != "en" {
		t.Errorf("expected one english run, got %+v", runs)
	}

	// Leaving a fresh run must not be recorded.
	a.startGame(a.pack)
	a.Close()
	runs, _ = store.TopRuns(10)
	if len(runs) != 1 {
		t.Errorf("closed run should not be saved, got %d runs", len(runs))
	}
}
