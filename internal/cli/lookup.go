package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"wikidex/internal/adapter/index"
	"wikidex/internal/usecase"
)

var (
	lookupText        string
	lookupSampleBytes int
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find the best matching article and sample its content",
	Long: `Run a title search, pick the best article by word overlap between the
query and candidate titles, and print the start of the article body.

Example:
  wikidex lookup -q "Thomas Jefferson"`,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVarP(&lookupText, "query", "q", "", "lookup query (required)")
	lookupCmd.Flags().IntVar(&lookupSampleBytes, "sample-bytes", 1500, "max bytes of article content to print")
	lookupCmd.MarkFlagRequired("query")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	searcher, err := index.OpenSearcher(cfg.Paths.TitleIndex)
	if err != nil {
		return err
	}
	defer searcher.Close()

	lookupUC := usecase.NewLookupUseCase(searcher, cfg.Search.TopK)

	best, err := lookupUC.BestArticle(lookupText)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	if best == nil {
		fmt.Println("No matching article found.")
		return nil
	}

	fmt.Printf("%s (score: %.4f)\n%s\n\n", best.Title, best.Score, best.Path)

	sample, err := lookupUC.ArticleSample(best.Path, lookupSampleBytes)
	if err != nil {
		return err
	}
	fmt.Println(sample)
	return nil
}
