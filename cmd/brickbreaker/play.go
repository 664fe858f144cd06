package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-bazaar/internal/core"
	"github.com/vovakirdan/brick-bazaar/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a brick breaker session in the terminal.

Controls:
  Left/Right, A/D  - Move the paddle
  Space            - Start, retry after a run
  E                - Open or close the bazaar
  1-9              - Buy an item (bazaar open) or run a debug op (debug open)
  T                - Tickle Bricko
  '                - Open or close the debug panel
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Default speed curve
  hard   - Faster ball, narrower paddle
  fixed  - No speed increase as the score grows

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy
  brickbreaker play --store bolt --db ./bricks.bolt
  brickbreaker play --config ./my-bricks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, logFile := newFileLogger()
	defer logFile.Close()

	backend, store, err := openPlayer(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progression store: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(tui.Options{
		Config:   cfg,
		Store:    store,
		Recorder: backend,
		Player:   flagPlayer,
		Logger:   logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
	})

	// Close store before potential exit
	backend.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
