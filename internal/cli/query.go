package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"wikidex/internal/adapter/index"
)

var (
	queryText    string
	queryTopK    int
	queryContent bool
	queryJSON    bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Ranked search over the indexes",
	Long: `Run a ranked free-text search against the title index (default) or
the content index. Query terms are stemmed the same way the index was
built, so "running" matches "run".

Examples:
  wikidex query -q "Billy Joel"
  wikidex query -q "piano man lyrics" --content -k 10 --json`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "search query (required)")
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", 0, "number of results (default from config)")
	queryCmd.Flags().BoolVar(&queryContent, "content", false, "search the content index instead of titles")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
	queryCmd.MarkFlagRequired("query")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	indexDir := cfg.Paths.TitleIndex
	field := index.FieldTitle
	if queryContent {
		indexDir = cfg.Paths.ContentIndex
		field = index.FieldContent
	}

	searcher, err := index.OpenSearcher(indexDir)
	if err != nil {
		return err
	}
	defer searcher.Close()

	topK := cfg.Search.TopK
	if queryTopK > 0 {
		topK = queryTopK
	}

	results, err := searcher.Search(queryText, field, topK)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if queryJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	fmt.Printf("Found %d results for: %s\n\n", len(results), queryText)
	for i, r := range results {
		title := r.Title
		if title == "" {
			title = r.Path
		}
		fmt.Printf("[%d] %s (score: %.4f)\n    %s\n", i+1, title, r.Score, r.Path)
	}
	return nil
}
