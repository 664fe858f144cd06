package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-bazaar/internal/progression"
	"github.com/vovakirdan/brick-bazaar/internal/session"
)

var debugCmd = &cobra.Command{
	Use:   "debug <op>",
	Short: "Run a debug operation on the record",
	Long: `Run one of the debug panel operations against the persisted record.

Operations:
  ` + debugOpList() + `

force-win records a won run of the full grid.

Examples:
  brickbreaker debug add-balance
  brickbreaker debug clear-upgrades --player alice`,
	Args: cobra.ExactArgs(1),
	Run:  runDebug,
}

func debugOpList() string {
	names := make([]string, len(session.DebugOps))
	for i, op := range session.DebugOps {
		names[i] = string(op)
	}
	return strings.Join(names, "\n  ")
}

func runDebug(_ *cobra.Command, args []string) {
	op, err := session.ParseDebugOp(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	backend, store, err := openPlayer(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progression store: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	// A headless machine applies the op exactly as the debug panel does.
	clock := session.NewManualClock()
	m := session.New(session.Options{
		Config:   cfg,
		Economy:  progression.NewEconomy(store, cfg.Economy),
		Frames:   clock,
		Timers:   clock,
		Recorder: backend,
		Player:   flagPlayer,
		Logger:   logger,
	})
	m.Debug(op)

	rec := store.Record()
	fmt.Printf("Ran %s. Balance: %d  Record: %d  Wins: %d  Balls: %d\n",
		op, rec.Balance, rec.BestScore, rec.Wins, rec.BallCount)
}
