// catcher is a critter catching game for small kids, played in the
// terminal, over SSH or in a desktop window.
//
// Usage:
//
//	catcher list              - List available games
//	catcher play <game>       - Play a game in the terminal
//	catcher menu              - Start menu to pick games interactively
//	catcher window [game]     - Play a game in a desktop window
//	catcher serve             - Start SSH server for remote play
//	catcher scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.catcher/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file for interactive commands (default: ~/.catcher/catcher.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/critter-catcher/internal/games/catcher"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Critter Catcher - sweep up animals with a net",
	Long: `Critter Catcher is a gentle game for small kids. Animals cross the
screen and you catch them with a net that follows the mouse.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  menu     - Interactive game picker menu
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  catcher list
  catcher play catcher
  catcher menu
  catcher window catcher_all
  catcher serve --ssh :2222
  catcher scores catcher`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catcher/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.catcher/catcher.log", "Log file for interactive commands")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
