// Package locale provides a registry of languages. Each language carries
// the balloon label pool (baby names) and the UI texts shown around a run.
// Built-in packs register themselves from embedded YAML at init time.
package locale

import (
	"fmt"
	"sort"
	"sync"
)

// Pack is one language: its labels and its UI text table.
type Pack struct {
	Code  string   `yaml:"code"`
	Name  string   `yaml:"name"`
	Names []string `yaml:"names"`
	Texts Texts    `yaml:"texts"`
}

// Texts holds every user-facing string around the game.
type Texts struct {
	TapToStart          string `yaml:"tap_to_start"`
	HelpTeddy           string `yaml:"help_teddy"`
	ClickTap            string `yaml:"click_tap"`
	ScoreMessageOne     string `yaml:"score_message_one"`
	ScoreMessageMany    string `yaml:"score_message_many"` // fmt verb %d receives the score
	GameOverTitle       string `yaml:"game_over_title"`
	GameOverMessage     string `yaml:"game_over_message"`
	ScoreLabel          string `yaml:"score_label"`
	CollectedNamesLabel string `yaml:"collected_names_label"`
	PlayAgain           string `yaml:"play_again"`
	SaveNames           string `yaml:"save_names"`
	FormBadge           string `yaml:"form_badge"`
	FormTitle           string `yaml:"form_title"`
	FormFooter          string `yaml:"form_footer"`
	DefaultScoreMessage string `yaml:"default_score_message"`
}

// ScoreMessage returns the name-form message for a final score.
func (t Texts) ScoreMessage(score int) string {
	switch {
	case score == 1:
		return t.ScoreMessageOne
	case score > 1:
		return fmt.Sprintf(t.ScoreMessageMany, score)
	default:
		return t.DefaultScoreMessage
	}
}

// Info contains metadata about a registered language.
type Info struct {
	Code string
	Name string
}

// Default is the language used when no preference is stored.
const Default = "en"

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a language pack to the registry.
// Panics if a pack with the same code is already registered.
func Register(p Pack) {
	mu.Lock()
	defer mu.Unlock()

	if p.Code == "" {
		panic("locale: pack without code")
	}
	if _, exists := packs[p.Code]; exists {
		panic(fmt.Sprintf("locale: language %q already registered", p.Code))
	}
	packs[p.Code] = p
}

// List returns all registered languages, sorted by code.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(packs))
	for code, p := range packs {
		result = append(result, Info{Code: code, Name: p.Name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})

	return result
}

// Get returns the pack for a language code.
// Returns an error if the code is not registered.
func Get(code string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[code]
	if !ok {
		return Pack{}, fmt.Errorf("locale: unknown language %q", code)
	}
	return p, nil
}

// Exists checks if a language is registered.
func Exists(code string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[code]
	return ok
}
