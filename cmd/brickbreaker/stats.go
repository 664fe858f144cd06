package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-bazaar/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the progression record",
	Long: `Print the persisted progression record and run totals of a player.

Examples:
  brickbreaker stats
  brickbreaker stats --player alice`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List bazaar items",
	Long: `List the bazaar catalog with prices and what the current balance
can see and afford.`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var buyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy a bazaar item",
	Long: `Buy a bazaar item with the persisted balance. Rejected purchases
change nothing and exit with status 1.

Examples:
  brickbreaker buy view_balance
  brickbreaker buy extra_ball`,
	Args: cobra.ExactArgs(1),
	Run:  runBuy,
}

// openEconomy opens the --player record with the configured catalog.
func openEconomy() (*progression.Economy, func(), error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, nil, err
	}
	backend, store, err := openPlayer(newLogger())
	if err != nil {
		return nil, nil, err
	}
	return progression.NewEconomy(store, cfg.Economy), func() { backend.Close() }, nil
}

func runStats(_ *cobra.Command, _ []string) {
	backend, store, err := openPlayer(newLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progression store: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	rec := store.Record()
	fmt.Printf("Player - %s\n", flagPlayer)
	fmt.Println()
	fmt.Printf("  %-16s %d\n", "Blocks broken", rec.Balance)
	fmt.Printf("  %-16s %d\n", "Record", rec.BestScore)
	fmt.Printf("  %-16s %d\n", "Times played", rec.TimesPlayed)
	fmt.Printf("  %-16s %d\n", "Wins", rec.Wins)
	fmt.Printf("  %-16s %d\n", "Balls", rec.BallCount)
	fmt.Printf("  %-16s %d\n", "Bricko tickles", rec.Tickles)
	fmt.Println()
	fmt.Printf("  %-16s %s\n", "Unlocked", unlockedList(rec))

	runs, err := backend.Stats(flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run stats: %v\n", err)
		os.Exit(1)
	}
	if runs.Runs > 0 {
		fmt.Println()
		fmt.Printf("  %-16s %d (%d won)\n", "Recorded runs", runs.Runs, runs.Wins)
		fmt.Printf("  %-16s %.1f\n", "Average score", runs.AvgScore)
		fmt.Printf("  %-16s %s\n", "Last played", runs.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func unlockedList(rec progression.Record) string {
	var out string
	add := func(on bool, name string) {
		if !on {
			return
		}
		if out != "" {
			out += ", "
		}
		out += name
	}
	add(rec.ViewBalance, "balance")
	add(rec.HighScore, "record")
	add(rec.Bricko, "bricko")
	add(rec.BazaarHint, "bazaar")
	if out == "" {
		return "nothing yet"
	}
	return out
}

func runShop(_ *cobra.Command, _ []string) {
	economy, closeFn, err := openEconomy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeFn()

	fmt.Printf("Bazaar - balance %d\n", economy.Store().Balance())
	fmt.Println()
	fmt.Printf("  %-12s %-16s %6s  %s\n", "ID", "Item", "Cost", "Status")
	fmt.Printf("  %-12s %-16s %6s  %s\n", "--", "----", "----", "------")

	for _, o := range economy.Offers() {
		status := "locked"
		switch {
		case o.Owned:
			status = "owned"
		case o.Affordable:
			status = "for sale"
		case o.Visible:
			status = "too pricey"
		}
		fmt.Printf("  %-12s %-16s %6d  %s\n", o.ID, o.Name, o.Cost, status)
	}
}

func runBuy(_ *cobra.Command, args []string) {
	id := args[0]

	economy, closeFn, err := openEconomy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	item, ok := economy.Item(id)
	if !ok {
		closeFn()
		fmt.Fprintf(os.Stderr, "Error: unknown item %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'brickbreaker shop' to see the catalog.")
		os.Exit(1)
	}

	if !economy.Purchase(id, nil) {
		balance := economy.Store().Balance()
		closeFn()
		fmt.Fprintf(os.Stderr, "Cannot buy %s: costs %d, balance %d", item.Name, item.Cost, balance)
		if economy.Owned(id) {
			fmt.Fprint(os.Stderr, ", already owned")
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
	defer closeFn()

	fmt.Printf("Bought %s for %d. Balance: %d\n", item.Name, item.Cost, economy.Store().Balance())
}
