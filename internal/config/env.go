package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	EnvDB   = "TEDDY_DB"
	EnvLang = "TEDDY_LANG"
)

// LoadEnv reads KEY=value pairs from the given .env files (default
// ".env") into the process environment. Variables already set win, and
// missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// EnvOr returns the variable's value, or def when it is unset or empty.
func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
