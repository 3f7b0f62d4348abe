package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"wikidex/internal/adapter/fs"
	"wikidex/internal/adapter/index"
	"wikidex/internal/usecase"
)

var (
	indexTitlesOnly  bool
	indexContentOnly bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build search indexes over the articles",
	Long: `Rebuild the title and content indexes from the articles directory.
Each index is rebuilt wholesale: the old index directory is deleted
first. Do not run while another process is querying the same index.

Examples:
  wikidex index             # Build both indexes
  wikidex index --titles    # Title index only
  wikidex index --content   # Content index only`,
	RunE: runIndexBuild,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVar(&indexTitlesOnly, "titles", false, "build only the title index")
	indexCmd.Flags().BoolVar(&indexContentOnly, "content", false, "build only the content index")
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if _, err := os.Stat(cfg.Paths.Articles); err != nil {
		return fmt.Errorf("articles directory not found: %s (run 'wikidex ingest' first)", cfg.Paths.Articles)
	}

	buildTitles := !indexContentOnly
	buildContent := !indexTitlesOnly

	if buildTitles {
		if err := buildOne(cfg.Paths.Articles, cfg.Paths.TitleIndex, index.ModeTitle); err != nil {
			return err
		}
	}
	if buildContent {
		if err := buildOne(cfg.Paths.Articles, cfg.Paths.ContentIndex, index.ModeContent); err != nil {
			return err
		}
	}
	return nil
}

func buildOne(sourceDir, indexDir string, mode index.Mode) error {
	cfg := GetConfig()

	writer, err := index.CreateWriter(indexDir, mode, cfg.Index.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to create %s index: %w", mode, err)
	}

	walker := fs.NewWalker([]string{"**/*.md"}, nil)
	buildUC := usecase.NewBuildUseCase(walker, cfg.Index.Workers)

	fmt.Printf("Building %s index in %s...\n", mode, indexDir)

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), fmt.Sprintf("indexing %s", mode))
		}
		bar.Set(done)
	}

	result, err := buildUC.Build(context.Background(), sourceDir, writer, mode, progress)
	if err != nil {
		writer.Close()
		// A failed build leaves no usable index behind.
		os.RemoveAll(indexDir)
		return fmt.Errorf("%s index build failed (partial index removed): %w", mode, err)
	}
	if err := writer.Close(); err != nil {
		os.RemoveAll(indexDir)
		return fmt.Errorf("failed to commit %s index (partial index removed): %w", mode, err)
	}

	fmt.Printf("\n%s index complete: %d files seen, %d indexed, %d skipped\n",
		mode, result.FilesSeen, result.DocsIndexed, result.Skipped)
	return nil
}
