package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHostKeyPathCreatesDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := hostKeyPath(want)
	if err != nil {
		t.Fatalf("hostKeyPath failed: %v", err)
	}
	if got != want {
		t.Errorf("hostKeyPath() = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory should exist: %v", err)
	}
}

func TestHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := hostKeyPath("")
	if err != nil {
		t.Fatalf("hostKeyPath failed: %v", err)
	}
	if want := filepath.Join(home, ".teddy", "host_key"); got != want {
		t.Errorf("hostKeyPath() = %q, expected %q", got, want)
	}
}

func TestSessionOptions(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.TickRate = 30
	s := &SSHServer{config: cfg}

	opts := s.sessionOptions(120, 40)
	if opts.Runtime.ScreenW != 120 || opts.Runtime.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}
	if opts.Runtime.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", opts.Runtime.TickRate)
	}
	if opts.Runtime.Seed == 0 {
		t.Error("each session should get a seed")
	}
	if opts.Language != "" || opts.Prefs != nil {
		t.Error("remote sessions should start at the language menu")
	}
}
