package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-bazaar/internal/progression"
	"github.com/vovakirdan/brick-bazaar/internal/session"
	"github.com/vovakirdan/brick-bazaar/internal/storage"
)

var (
	flagSimBalls  int
	flagSimFrames int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play a headless autopilot run",
	Long: `Play one run without a terminal, steering the paddle automatically.
The run uses a throwaway in-memory record, so nothing is persisted.
Identical flags always produce the identical run and state hash.

Examples:
  brickbreaker sim
  brickbreaker sim --balls 3 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimBalls, "balls", 1, "Balls in play")
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 200000, "Give up after this many frames")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	store := progression.Load(storage.NewMemory(), logger)
	store.SetBallCount(flagSimBalls)

	clock := session.NewManualClock()
	m := session.New(session.Options{
		Config:  cfg,
		Economy: progression.NewEconomy(store, cfg.Economy),
		Frames:  clock,
		Timers:  clock,
		Logger:  logger,
	})

	m.Start()
	clock.Advance(time.Duration(cfg.Countdown.From)*cfg.Countdown.Step + cfg.Countdown.GoDelay)

	frames := 0
	for frames < flagSimFrames && m.State() == session.StateRunning {
		in := m.Sim().Autopilot()
		m.SetInput(in.Left, in.Right)
		if clock.Frame() == 0 {
			break
		}
		frames++
	}

	sim := m.Sim()
	fps := max(flagFPS, 1)
	fmt.Printf("Result:     %s\n", m.State())
	fmt.Printf("Score:      %d / %d\n", sim.Score(), sim.Grid().Total())
	fmt.Printf("Frames:     %d (%s at %d fps)\n", frames, time.Duration(frames)*time.Second/time.Duration(fps), fps)
	fmt.Printf("Balls lost: %d of %d\n", sim.BallsLost(), flagSimBalls)
	fmt.Printf("Speed:      %.2f\n", sim.Speed())
	snap := sim.Snapshot()
	fmt.Printf("State hash: %016x\n", snap.Hash())

	if m.State() == session.StateRunning {
		os.Exit(2)
	}
}
