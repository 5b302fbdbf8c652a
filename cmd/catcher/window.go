package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critter-catcher/internal/games/catcher"
	"github.com/vovakirdan/critter-catcher/internal/platform/gui"
	"github.com/vovakirdan/critter-catcher/internal/settings"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the mouse or a touch screen.

Controls:
  Mouse/Touch  - Move the net
  Click/Space  - Close the net
  Enter        - Start / next level
  P            - Pause
  +/-          - Faster / slower
  R            - Reset
  M            - Sound on/off
  Esc/Q        - Quit

Examples:
  catcher window
  catcher window catcher_all --width 1280 --height 800`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 640, "Window height in pixels")
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := catcher.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	requireGame(gameID)
	applyGameFlags()

	logger, closeLog := mustLogger(false)
	defer closeLog()

	cfg := catcher.LoadConfig()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err := gui.RunWindow(gameID, gui.Options{
		Width:    flagWidth,
		Height:   flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Config:   &cfg,
		Store:    store,
		Settings: settings.Open(logger),
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
