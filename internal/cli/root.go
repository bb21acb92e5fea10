package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dataDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Bidding marketplace - list collections and resolve bids",
	Long: `Bidding marketplace is a demonstration auction service: users list
collections for sale, other users place bids, and the owner accepts one
bid per collection, rejecting all competing pending bids.

Records are kept in flat JSON files under the data directory.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory for JSON record files (overrides config)")
}
