package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/sfx"
)

var sfxCmd = &cobra.Command{
	Use:   "sfx",
	Short: "Work with the sound effects",
}

var sfxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sound effects",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range sfx.Effects() {
			fmt.Println(e)
		}
	},
}

var sfxExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write every sound effect as a WAV file",
	Long: `Synthesize every sound effect and write it to <dir>/<name>.wav
(44.1 kHz, 16-bit stereo).

Example:
  homebound sfx export ./sounds`,
	Args: cobra.ExactArgs(1),
	Run:  runSFXExport,
}

func init() {
	sfxCmd.AddCommand(sfxListCmd)
	sfxCmd.AddCommand(sfxExportCmd)
}

func runSFXExport(cmd *cobra.Command, args []string) {
	paths, err := sfx.Export(expandHome(args[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	fmt.Printf("Wrote %d effects\n", len(paths))
}
