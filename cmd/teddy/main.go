// teddy is the terminal edition of the teddy balloon mini-game.
//
// Usage:
//
//	teddy play             - Play in this terminal
//	teddy serve            - Start SSH server for remote play
//	teddy scores           - Show the best runs
//	teddy names            - Show the most collected names
//	teddy langs            - List available languages
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: $TEDDY_DB or ~/.teddy/teddy.db)
//	--config <path>  - Load game tuning from a YAML file
//	--lang <code>    - Play in this language (default: $TEDDY_LANG)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/teddy-balloons/internal/config"
	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagLang   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "teddy",
})

func main() {
	if err := config.LoadEnv(); err != nil {
		logger.Warn("could not read .env", "error", err)
	}

	// Environment is read before flags are parsed so it can supply defaults.
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.EnvOr(config.EnvDB, storage.DefaultPath), "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", config.EnvOr(config.EnvLang, ""), "Language code (see 'teddy langs')")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "teddy",
	Short: "Teddy Balloons - help the teddy bear collect baby names",
	Long: `Teddy Balloons is a one-button game: keep the teddy bear flying
between the clouds and collect balloons carrying baby names.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show the best runs
  names    - Show the most collected names
  langs    - List available languages

Examples:
  teddy play
  teddy play --lang es
  teddy serve --ssh :2222
  teddy scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(langsCmd)
}

// loadTuning reads the tuning config. A bad --config is fatal.
func loadTuning() *config.TeddyConfig {
	cfg, err := config.LoadTeddy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return &cfg
}
