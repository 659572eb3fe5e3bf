// nomad is Desert Nomad, an endless desert runner for the terminal.
//
// Usage:
//
//	nomad play [variant]     - Play a variant (default: nomad)
//	nomad menu               - Pick a variant interactively
//	nomad list               - List available variants
//	nomad scores [variant]   - Show high scores for a variant
//	nomad sim                - Run headless autopilot sessions
//	nomad config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.nomad/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file during interactive play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/desert-nomad/internal/games/nomad"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nomad",
	Short: "Desert Nomad - an endless runner in your terminal",
	Long: `Desert Nomad is a side-scrolling endless runner. Jump over cacti,
rocks and wildlife, duck under tumbleweeds and climb out of quicksand
while sandstorms, heatwaves and wind bend the rules.

Available commands:
  play     - Start a run directly
  menu     - Interactive variant picker
  list     - Show all variants
  scores   - View high scores
  sim      - Headless autopilot runs for balancing
  config   - Print the effective configuration

Examples:
  nomad play
  nomad play nomad_calm
  nomad menu --difficulty hard
  nomad sim --runs 20 --seed 7
  nomad config --config ./my-nomad.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nomad/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive modes (default: no logs)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
