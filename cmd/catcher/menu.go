package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critter-catcher/internal/platform/tui"
	"github.com/vovakirdan/critter-catcher/internal/registry"
	"github.com/vovakirdan/critter-catcher/internal/settings"
	"github.com/vovakirdan/critter-catcher/internal/sound"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc in a game returns to the menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  catcher menu
  catcher menu --fps 30
  catcher menu --difficulty easy`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// bellSound rings the terminal bell on stdout. The program must render to
// the returned writer so bells and frames do not interleave.
func bellSound() (sound.Player, io.Writer) {
	out := sound.NewSyncFile(os.Stdout)
	return sound.NewBell(out), out
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	logger, closeLog := mustLogger(false)
	defer closeLog()

	store := openStore(logger)
	prefs := settings.Open(logger)
	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		bell, out := bellSound()
		back, err := tui.Run(game, cfg, tui.Options{
			Store:     store,
			Settings:  prefs,
			Sound:     bell,
			Logger:    logger,
			Output:    out,
			AllowBack: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
