package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"wikidex/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wikidex",
	Short: "Wikipedia dump ingestion and ranked article lookup",
	Long: `wikidex converts a Wikipedia XML dump into a directory of cleaned
Markdown articles, builds title and content indexes over them, and
answers ranked free-text lookups.

Example usage:
  wikidex download               # Fetch and extract the dump
  wikidex ingest                 # Convert the dump to article files
  wikidex index                  # Build title and content indexes
  wikidex query -q "Billy Joel"  # Ranked title search
  wikidex lookup -q "Billy Joel" # Best article with a content sample`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./wikidex.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
