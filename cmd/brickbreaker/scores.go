package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-bazaar/internal/platform/tui"
)

var (
	flagScoresLimit int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best recorded runs of a player, highest score first.

Examples:
  brickbreaker scores
  brickbreaker scores --limit 25
  brickbreaker scores --player alice -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the run history in a table")
}

func runScores(_ *cobra.Command, _ []string) {
	backend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progression store: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(backend, flagPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := backend.TopRuns(flagPlayer, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", flagPlayer)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreaker play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Result", "Balls", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "----")

	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-6d  %-6s  %-5d  %s\n", i+1, r.Score, result, r.Balls, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := backend.Stats(flagPlayer)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Wins: %d\n", stats.BestScore, stats.Runs, stats.Wins)
	}
}
