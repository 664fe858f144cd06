// brickbreaker is a terminal brick breaker with a persistent bazaar.
//
// Usage:
//
//	brickbreaker play            - Play in the terminal
//	brickbreaker serve           - Start SSH server for remote play
//	brickbreaker stats           - Show the progression record
//	brickbreaker shop            - List bazaar items
//	brickbreaker buy <item>      - Buy a bazaar item
//	brickbreaker scores          - Show the best recorded runs
//	brickbreaker debug <op>      - Run a debug operation on the record
//	brickbreaker sim             - Play a headless autopilot run
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60, env BRICK_FPS)
//	--db <path>          - Set database path (env BRICK_DB)
//	--store <kind>       - sqlite, bolt or memory (env BRICK_STORE)
//	--config <path>      - Custom game config YAML (env BRICK_CONFIG)
//	--difficulty <name>  - easy, normal, hard or fixed (env BRICK_DIFFICULTY)
//	--player <name>      - Progression record to use (default: local)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Bazaar - break bricks, earn blocks, shop the bazaar",
	Long: `Brick Bazaar is a terminal brick breaker. Every brick you break adds
to a balance that persists between runs and buys upgrades in the bazaar.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  stats    - Show the progression record
  shop     - List bazaar items
  buy      - Buy a bazaar item
  scores   - Show the best recorded runs
  debug    - Run a debug operation on the record
  sim      - Play a headless autopilot run

Examples:
  brickbreaker play
  brickbreaker play --difficulty hard
  brickbreaker serve --ssh :2222
  brickbreaker buy view_balance
  brickbreaker scores --player alice`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/brickbreaker.db", "Path to progression database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.KindSQLite, "Progression store: sqlite, bolt, memory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Player record to read and write")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(simCmd)
}

// applyEnv fills flags the user did not set from BRICK_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("store") {
		flagStore = env.Store
	}
	if !flags.Changed("config") && env.ConfigPath != "" {
		flagConfig = env.ConfigPath
	}
	if !flags.Changed("difficulty") {
		flagDifficulty = env.Difficulty
	}
	if !flags.Changed("ssh") && cmd.Flags().Lookup("ssh") != nil {
		flagSSHAddr = env.SSHAddr
	}
	return nil
}
