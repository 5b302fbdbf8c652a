package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critter-catcher/internal/games/catcher"
	"github.com/vovakirdan/critter-catcher/internal/platform/tui"
	"github.com/vovakirdan/critter-catcher/internal/registry"
	"github.com/vovakirdan/critter-catcher/internal/settings"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Mouse        - Move the net
  Click/Space  - Close the net
  Arrows/WASD  - Move the net
  Enter        - Start / next level
  P            - Pause
  +/-          - Faster / slower
  R            - Reset
  M            - Sound on/off
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow animals, gentle spawn growth
  normal - Default speed
  hard   - Fast animals, busy spawning
  fixed  - Stay on the last animal instead of starting over

Examples:
  catcher play catcher
  catcher play catcher_all --difficulty easy
  catcher play catcher --config ./my-catcher.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the games.
// An unknown difficulty name ends the command.
func applyGameFlags() {
	if err := catcher.SetDifficultyPreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	catcher.SetConfigPath(flagConfig)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)
	applyGameFlags()

	logger, closeLog := mustLogger(false)
	defer closeLog()

	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	prefs := settings.Open(logger)

	bell, out := bellSound()
	_, runErr := tui.Run(game, cfg, tui.Options{
		Store:    store,
		Settings: prefs,
		Sound:    bell,
		Logger:   logger,
		Output:   out,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
