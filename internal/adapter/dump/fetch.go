package dump

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// ProgressFunc receives the total download size (or -1 when unknown)
// and returns a sink that every downloaded byte is copied into.
type ProgressFunc func(total int64) io.Writer

// Download fetches the dump archive at url into dest.
func Download(url, dest string, progress ProgressFunc) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("fetch dump: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch dump: unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	var w io.Writer = out
	if progress != nil {
		w = io.MultiWriter(out, progress(resp.ContentLength))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download dump: %w", err)
	}
	return out.Sync()
}

// ExtractBz2 decompresses a .bz2 archive into dest.
func ExtractBz2(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := io.Copy(w, bzip2.NewReader(bufio.NewReader(in))); err != nil {
		return fmt.Errorf("extract dump: %w", err)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Sync()
}
