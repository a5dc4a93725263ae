package prefs

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTemp(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("APPDATA", t.TempDir())

	m, err := gdata.Open(gdata.Config{AppName: "teddy_prefs_test"})
	if err != nil {
		t.Fatalf("gdata.Open failed: %v", err)
	}
	return m
}

func TestMemoryOnly(t *testing.T) {
	s := NewStore(nil)

	if s.Persistent() {
		t.Error("nil manager should not be persistent")
	}
	if s.Language() != "" {
		t.Errorf("expected no language, got %q", s.Language())
	}
	if err := s.SetLanguage("es"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	if s.Language() != "es" {
		t.Errorf("expected es, got %q", s.Language())
	}
}

func TestLanguageRoundTrip(t *testing.T) {
	m := openTemp(t)

	s := NewStore(m)
	if s.Language() != "" {
		t.Fatalf("fresh store should have no language, got %q", s.Language())
	}
	if err := s.SetLanguage("es"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}

	reopened := NewStore(m)
	if reopened.Language() != "es" {
		t.Errorf("expected persisted es, got %q", reopened.Language())
	}
}

func TestLoadCorrupt(t *testing.T) {
	m := openTemp(t)
	if err := m.SaveObjectProp(prefsObject, prefsProperty, []byte("language: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	s := &Store{data: m}
	if err := s.Load(); err == nil {
		t.Error("Load should fail on corrupt data")
	}
	if s.Language() != "" {
		t.Errorf("corrupt data should leave defaults, got %q", s.Language())
	}
}
