package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"wikidex/internal/adapter/dump"
)

var downloadKeepArchive bool

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download and extract the Wikipedia dump",
	Long: `Download the configured dump archive and extract it to the dump path.
The ingest command can also read the .bz2 archive directly; use
--keep-archive to skip extraction and keep the compressed file.`,
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().BoolVar(&downloadKeepArchive, "keep-archive", false, "keep the .bz2 archive and skip extraction")
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	archive := cfg.Paths.Dump + ".bz2"

	fmt.Printf("Downloading %s\n", cfg.Dump.URL)
	err := dump.Download(cfg.Dump.URL, archive, func(total int64) io.Writer {
		return progressbar.DefaultBytes(total, "downloading")
	})
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	if downloadKeepArchive {
		fmt.Printf("Download complete: %s\n", archive)
		return nil
	}

	fmt.Println("Extracting dump...")
	if err := dump.ExtractBz2(archive, cfg.Paths.Dump); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if err := os.Remove(archive); err != nil {
		return fmt.Errorf("failed to remove archive: %w", err)
	}

	fmt.Printf("Download complete: %s\n", cfg.Paths.Dump)
	return nil
}
