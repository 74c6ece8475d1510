// homebound is a charge-jump endless runner for the terminal, SSH and the desktop.
//
// Usage:
//
//	homebound list               - List available modes
//	homebound play [mode]        - Play in the terminal
//	homebound gui [mode]         - Play in a window
//	homebound serve              - Start SSH server for remote play
//	homebound scores [mode]      - Show recorded runs
//	homebound config             - Print the effective configuration
//	homebound sfx export <dir>   - Write sound effects as WAV files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.homebound/runs.db)
//	--config <path>      - Use a YAML or TOML config file
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file used while the terminal UI runs
//	--sound              - Play sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/games/homebound"
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
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "homebound",
	Short: "Homebound - jump your way home",
	Long: `Homebound is an endless runner: hold to charge a jump, clear the
obstacles, grab hearts and clocks, and reach home where the cat waits.

Available commands:
  list     - Show the available modes
  play     - Play in the terminal
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the effective configuration
  sfx      - Export the sound effects

Examples:
  homebound play
  homebound play homebound_endless --difficulty hard
  homebound gui --sound
  homebound serve --ssh :2222
  homebound scores --interactive`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := parseLevel(flagLogLevel); err != nil {
			return err
		}
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		homebound.SetConfigPath(flagConfig)
		homebound.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while the terminal UI runs")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(sfxCmd)
}
