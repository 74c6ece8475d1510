package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/platform/gui"
	"github.com/vovakirdan/homebound/internal/registry"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui [mode]",
	Short: "Play in a desktop window",
	Long: `Start a run in a window. The window reports real key releases, so
the jump charge follows exactly how long the key is held.

Controls:
  Space/Up/W - Hold to charge, let go to jump (also starts the run)
  Enter/R    - Restart after game over or reaching home
  Esc/Q      - Quit

Examples:
  homebound gui
  homebound gui homebound_endless --scale 1.5 --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the 800x600 world")
}

func runGUI(cmd *cobra.Command, args []string) {
	mode, err := resolveMode(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr)

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound, closeSound := openSound(logger)

	runErr := gui.Run(game, runtimeConfig(0, 0), gui.Options{
		Store:  store,
		Logger: logger,
		Sound:  sound,
		Scale:  flagScale,
	})

	closeSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
