// Package prefs persists player preferences (currently the language)
// using gdata, which picks the right per-platform save location.
package prefs

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "teddy_balloons"

const (
	prefsObject   = "prefs"
	prefsProperty = "player"
)

// Prefs is the persisted preference set.
type Prefs struct {
	Language string `yaml:"language"`
}

// Store loads and saves Prefs. A Store without a gdata manager keeps
// preferences in memory only.
type Store struct {
	data  *gdata.Manager
	prefs Prefs
}

// Open opens the default gdata location. On failure it returns a
// memory-only store together with the error.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("prefs: cannot open save data: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps a gdata manager (nil allowed) and loads what is stored.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{data: m}
	if err := s.Load(); err != nil {
		log.Warn("prefs: using defaults", "err", err)
	}
	return s
}

// Load reads stored preferences. Missing data is not an error.
func (s *Store) Load() error {
	s.prefs = Prefs{}
	if s.data == nil || !s.data.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	raw, err := s.data.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("prefs: cannot load: %w", err)
	}

	var p Prefs
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("prefs: cannot decode: %w", err)
	}
	s.prefs = p
	return nil
}

// Save writes the current preferences. It is a no-op in memory-only mode.
func (s *Store) Save() error {
	if s.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("prefs: cannot encode: %w", err)
	}
	if err := s.data.SaveObjectProp(prefsObject, prefsProperty, raw); err != nil {
		return fmt.Errorf("prefs: cannot save: %w", err)
	}
	return nil
}

// Language returns the stored language code, or "" when none was chosen.
func (s *Store) Language() string {
	return s.prefs.Language
}

// SetLanguage records a language choice and saves it.
func (s *Store) SetLanguage(code string) error {
	s.prefs.Language = code
	return s.Save()
}

// Persistent reports whether preferences survive a restart.
func (s *Store) Persistent() bool {
	return s.data != nil
}
