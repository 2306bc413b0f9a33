package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skydrift/skydrift/internal/config"
	"github.com/skydrift/skydrift/internal/core"
	"github.com/skydrift/skydrift/internal/game"
	"github.com/skydrift/skydrift/internal/platform/audio"
	"github.com/skydrift/skydrift/internal/platform/tui"
	"github.com/skydrift/skydrift/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/W/Up - Boost
  R/Enter    - Start / restart
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Examples:
  skydrift play
  skydrift play --seed 42
  skydrift play --config ./my-skydrift.yaml
  skydrift play --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sink game.EventSink
	if !flagMute {
		sounds := audio.NewSink()
		if audioErr := sounds.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		} else {
			sink = sounds
			defer sounds.Close()
		}
	}

	runErr := tui.Run(cfg, rt, store, sink)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
