package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"wikidex/internal/adapter/articles"
	"wikidex/internal/adapter/catalog"
	"wikidex/internal/adapter/dump"
	"wikidex/internal/domain"
	"wikidex/internal/usecase"
)

var ingestDumpPath string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Convert the dump into cleaned article files",
	Long: `Stream the Wikipedia XML dump, normalize each page's wiki markup, and
write cleaned Markdown articles into the sharded articles directory.
Pages that are empty, too short, or redirects are skipped. Re-running
overwrites articles by deterministic path.

Examples:
  wikidex ingest
  wikidex ingest --dump wiki_raw/enwiki.xml.bz2`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&ingestDumpPath, "dump", "", "dump file to ingest (default from config; .bz2 accepted)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	dumpPath := cfg.Paths.Dump
	if ingestDumpPath != "" {
		dumpPath = ingestDumpPath
	}
	if _, err := os.Stat(dumpPath); err != nil {
		return fmt.Errorf("dump file not found: %s (run 'wikidex download' first)", dumpPath)
	}

	if err := os.MkdirAll(cfg.Paths.Articles, 0755); err != nil {
		return fmt.Errorf("failed to create articles directory: %w", err)
	}

	cat, err := catalog.Open(cfg.Paths.Catalog)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer cat.Close()

	size, err := dump.Size(dumpPath)
	if err != nil {
		return err
	}
	bar := progressbar.DefaultBytes(size, "ingesting")

	source, err := dump.Open(dumpPath, bar)
	if err != nil {
		return fmt.Errorf("failed to open dump: %w", err)
	}
	defer source.Close()

	writer := articles.NewWriter(cfg.Paths.Articles)
	ingestUC := usecase.NewIngestUseCase(source, writer, cat)

	fmt.Printf("Ingesting %s into %s...\n", dumpPath, cfg.Paths.Articles)

	stats, err := ingestUC.Run(func(s domain.IngestStats) {
		bar.Describe(fmt.Sprintf("ingesting (%d articles)", s.Written))
	})
	if err != nil {
		return fmt.Errorf("ingestion failed after %d pages: %w", stats.PagesSeen, err)
	}

	fmt.Printf("\nIngestion complete:\n")
	fmt.Printf("  Pages seen:        %d\n", stats.PagesSeen)
	fmt.Printf("  Articles written:  %d\n", stats.Written)
	fmt.Printf("  Skipped empty:     %d\n", stats.SkippedEmpty)
	fmt.Printf("  Skipped short:     %d\n", stats.SkippedShort)
	fmt.Printf("  Skipped redirects: %d\n", stats.SkippedRedirect)
	return nil
}
