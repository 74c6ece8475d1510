package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/homebound/internal/platform/tui"
	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs",
	Long: `Display the best finished runs for a mode.

Examples:
  homebound scores
  homebound scores homebound_endless --limit 20
  homebound scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	mode, err := resolveMode(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, mode, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	info, _ := registry.Lookup(mode)
	fmt.Printf("Best runs - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'homebound play %s' to record the first run!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-5s  %s\n", "Rank", "Score", "Outcome", "Level", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-5s  %s\n", "----", "-----", "-------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-8s  %-5d  %s\n", i+1, r.Score, r.Outcome, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(mode); err == nil {
		fmt.Printf("Runs: %d  Home: %d  Best: %d  Average: %.0f\n",
			stats.RunsCount, stats.ClearedRuns, stats.HighScore, stats.AvgScore)
	}
}
