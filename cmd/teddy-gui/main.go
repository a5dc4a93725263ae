// teddy-gui is the windowed (and WebAssembly) edition of the teddy
// balloon mini-game, built on ebiten.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/teddy-balloons/internal/config"
	"github.com/vovakirdan/teddy-balloons/internal/locale"
	"github.com/vovakirdan/teddy-balloons/internal/platform/gui"
	"github.com/vovakirdan/teddy-balloons/internal/prefs"
	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

var (
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagLang   string
	flagNoDB   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "teddy-gui",
})

func main() {
	if err := config.LoadEnv(); err != nil {
		logger.Warn("could not read .env", "error", err)
	}

	rootCmd.Flags().StringVar(&flagDBPath, "db", config.EnvOr(config.EnvDB, storage.DefaultPath), "Path to run history database")
	rootCmd.Flags().StringVar(&flagLang, "lang", config.EnvOr(config.EnvLang, ""), "Language code")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "teddy-gui",
	Short: "Teddy Balloons in a window",
	Long: `Open the game in a window. Click, tap or press Space to make the
teddy bear fly.

Examples:
  teddy-gui
  teddy-gui --lang es
  teddy-gui --no-db`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.Flags().BoolVar(&flagNoDB, "no-db", false, "Do not record runs")
}

func run(_ *cobra.Command, _ []string) error {
	if flagLang != "" && !locale.Exists(flagLang) {
		return fmt.Errorf("unknown language %q", flagLang)
	}

	tuning, err := config.LoadTeddy(flagConfig)
	if err != nil {
		return err
	}

	var store *storage.Store
	if !flagNoDB {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run history, continuing without it", "error", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	prefStore, err := prefs.Open()
	if err != nil {
		logger.Warn("language will not be remembered", "error", err)
	}

	app := gui.NewApp(gui.Options{
		Store:    store,
		Prefs:    prefStore,
		Tuning:   &tuning,
		Language: flagLang,
		Seed:     flagSeed,
		Logger:   logger,
	})
	defer app.Close()

	ebiten.SetWindowSize(gui.FieldW, gui.FieldH)
	ebiten.SetWindowTitle("Teddy Balloons")

	return ebiten.RunGame(app)
}
