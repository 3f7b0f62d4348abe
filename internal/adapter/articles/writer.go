// Package articles materializes cleaned pages as sharded Markdown files.
package articles

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"wikidex/internal/adapter/wikitext"
	"wikidex/internal/domain"
	"wikidex/internal/port"
)

const (
	// maxNameRunes caps the sanitized filename before path-length
	// enforcement kicks in.
	maxNameRunes = 240

	// maxPathBytes is the filesystem path budget. Enforced by
	// truncating the filename, never the shard.
	maxPathBytes = 255
)

var disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// Writer writes cleaned articles under root/<shard>/<name>.md.
type Writer struct {
	root string
}

func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Materialize normalizes a raw page and writes it to disk, unless one
// of the skip rules applies. Skips are not errors; the outcome says
// which rule fired. Writes overwrite by deterministic path, so
// re-running ingestion is safe.
func (w *Writer) Materialize(page domain.RawPage) (domain.Article, port.WriteOutcome, error) {
	if page.Title == "" || page.Text == "" {
		return domain.Article{}, port.OutcomeSkippedEmpty, nil
	}

	body := wikitext.Normalize(page.Text)
	if strings.TrimSpace(body) == "" {
		return domain.Article{}, port.OutcomeSkippedEmpty, nil
	}

	// Degenerate stubs have fewer than 4 line segments. Redirect stubs
	// mention REDIRECT in the 4th segment. Both checks are heuristics
	// over the normalized body, not structural markers.
	parts := strings.SplitN(body, "\n", 5)
	if len(parts) < 4 {
		return domain.Article{}, port.OutcomeSkippedShort, nil
	}
	if strings.Contains(parts[3], "REDIRECT") {
		return domain.Article{}, port.OutcomeSkippedRedirect, nil
	}

	name := SanitizeTitle(page.Title)
	shard := shardFor(name)
	dir := filepath.Join(w.root, shard)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domain.Article{}, 0, fmt.Errorf("create shard dir: %w", err)
	}

	path := articlePath(dir, name)
	title := html.UnescapeString(page.Title)
	content := "# " + title + "\n\n" + body

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return domain.Article{}, 0, fmt.Errorf("write article: %w", err)
	}

	return domain.Article{Title: title, Body: body, Path: path}, port.OutcomeWritten, nil
}

// SanitizeTitle reduces a title to a safe filename: everything outside
// {word chars, whitespace, hyphen} removed, whitespace replaced with
// underscores, capped at 240 runes.
func SanitizeTitle(title string) string {
	s := disallowedRe.ReplaceAllString(title, "")
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)

	runes := []rune(s)
	if len(runes) > maxNameRunes {
		runes = runes[:maxNameRunes]
	}
	return string(runes)
}

// shardFor picks the shard directory: the first two lowercased runes
// of the sanitized name, or what is available of them.
func shardFor(name string) string {
	runes := []rune(strings.ToLower(name))
	switch {
	case len(runes) >= 2:
		return string(runes[:2])
	case len(runes) == 1:
		return string(runes[:1])
	default:
		return "_"
	}
}

// articlePath joins the final path and enforces the byte budget by
// truncating the filename and marking the cut with an ellipsis.
func articlePath(dir, name string) string {
	path := filepath.Join(dir, name+".md")
	if len(path) <= maxPathBytes {
		return path
	}

	excess := len(path) - maxPathBytes
	runes := []rune(name)
	keep := len(runes) - excess - 3
	if keep < 0 {
		keep = 0
	}
	for {
		path = filepath.Join(dir, string(runes[:keep])+"....md")
		if len(path) <= maxPathBytes || keep == 0 {
			return path
		}
		keep--
	}
}
