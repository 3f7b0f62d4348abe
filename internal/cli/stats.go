package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"wikidex/internal/adapter/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ingestion statistics from the catalog",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if _, err := os.Stat(cfg.Paths.Catalog); err != nil {
		return fmt.Errorf("no catalog found at %s (run 'wikidex ingest' first)", cfg.Paths.Catalog)
	}

	cat, err := catalog.Open(cfg.Paths.Catalog)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer cat.Close()

	stats, err := cat.GetStats()
	if err != nil {
		return err
	}
	count, err := cat.CountArticles()
	if err != nil {
		return err
	}

	fmt.Printf("Catalog: %s\n", cfg.Paths.Catalog)
	fmt.Printf("  Articles recorded: %d\n", count)
	fmt.Printf("  Last ingest run:\n")
	fmt.Printf("    Pages seen:        %d\n", stats.PagesSeen)
	fmt.Printf("    Articles written:  %d\n", stats.Written)
	fmt.Printf("    Skipped empty:     %d\n", stats.SkippedEmpty)
	fmt.Printf("    Skipped short:     %d\n", stats.SkippedShort)
	fmt.Printf("    Skipped redirects: %d\n", stats.SkippedRedirect)
	return nil
}
