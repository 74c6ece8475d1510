package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/homebound/internal/platform/tui"
	"github.com/vovakirdan/homebound/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The mode defaults to "homebound".

Controls:
  Space/Up/W   - Hold to charge, let go to jump (also starts the run)
  Enter/R      - Restart after game over or reaching home
  Ctrl+S       - Save a text screenshot
  Q/Esc/Ctrl+C - Quit

Terminals do not report key release. A held key counts as released once
its auto-repeat stops for input.release_after_ticks ticks.

Difficulty options:
  easy   - Start with full lives
  normal - Default progression
  hard   - Two lives, starts at level 3
  fixed  - No progression

Examples:
  homebound play
  homebound play homebound_endless
  homebound play --difficulty hard --sound
  homebound play --config ./my-homebound.toml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, err := resolveMode(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound, closeSound := openSound(logger)

	runErr := tui.Run(game, runtimeConfig(width, height), tui.Options{
		Store:        store,
		Logger:       logger,
		Sound:        sound,
		ReleaseAfter: gameCfg.Input.ReleaseAfterTicks,
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
