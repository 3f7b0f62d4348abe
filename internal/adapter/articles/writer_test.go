package articles

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"wikidex/internal/domain"
	"wikidex/internal/port"
)

// fiveLines passes the minimum-segment filter untouched by cleanup.
const fiveLines = "Line one\nLine two\nLine three\nLine four\nLine five"

func TestMaterialize_WritesShardedFile(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	article, outcome, err := w.Materialize(domain.RawPage{Title: "Test Page", Text: fiveLines})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if outcome != port.OutcomeWritten {
		t.Fatalf("expected written outcome, got %v", outcome)
	}

	wantPath := filepath.Join(root, "te", "Test_Page.md")
	if article.Path != wantPath {
		t.Errorf("expected path %s, got %s", wantPath, article.Path)
	}

	data, err := os.ReadFile(article.Path)
	if err != nil {
		t.Fatalf("read article: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# Test Page\n\n") {
		t.Errorf("expected title header, got %q", content[:min(40, len(content))])
	}
	if !strings.Contains(content, "Line five") {
		t.Errorf("body missing, got %q", content)
	}
}

func TestMaterialize_UnescapesTitleInHeader(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	article, outcome, err := w.Materialize(domain.RawPage{Title: "AT&amp;T", Text: fiveLines})
	if err != nil || outcome != port.OutcomeWritten {
		t.Fatalf("materialize: outcome=%v err=%v", outcome, err)
	}

	data, _ := os.ReadFile(article.Path)
	if !strings.HasPrefix(string(data), "# AT&T\n") {
		t.Errorf("expected unescaped title header, got %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestMaterialize_SkipsEmpty(t *testing.T) {
	w := NewWriter(t.TempDir())

	cases := []domain.RawPage{
		{Title: "", Text: fiveLines},
		{Title: "Something", Text: ""},
		{Title: "Whitespace", Text: "   \n  \n "},
	}
	for _, page := range cases {
		_, outcome, err := w.Materialize(page)
		if err != nil {
			t.Fatalf("materialize %q: %v", page.Title, err)
		}
		if outcome != port.OutcomeSkippedEmpty {
			t.Errorf("page %q: expected empty skip, got %v", page.Title, outcome)
		}
	}
}

func TestMaterialize_SkipsShortBodies(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	_, outcome, err := w.Materialize(domain.RawPage{Title: "Stub", Text: "one\ntwo\nthree"})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if outcome != port.OutcomeSkippedShort {
		t.Errorf("expected short skip, got %v", outcome)
	}
	assertNoFiles(t, root)
}

func TestMaterialize_SkipsRedirects(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	raw := "one\ntwo\nthree\nREDIRECT to elsewhere\nfive"
	_, outcome, err := w.Materialize(domain.RawPage{Title: "Redir", Text: raw})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if outcome != port.OutcomeSkippedRedirect {
		t.Errorf("expected redirect skip, got %v", outcome)
	}
	assertNoFiles(t, root)
}

func TestSanitizeTitle_Charset(t *testing.T) {
	got := SanitizeTitle("Foo: Bar/Baz? (2024)!")
	want := "Foo_BarBaz_2024"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	clean := regexp.MustCompile(`^[\p{L}\p{N}_-]*$`)
	for _, title := range []string{"a b\tc", "x*y|z", "ünïcode Tîtle", "semi;colon"} {
		s := SanitizeTitle(title)
		if !clean.MatchString(s) {
			t.Errorf("sanitized %q contains disallowed characters: %q", title, s)
		}
	}
}

func TestSanitizeTitle_CapsLength(t *testing.T) {
	s := SanitizeTitle(strings.Repeat("a", 500))
	if len([]rune(s)) != 240 {
		t.Errorf("expected 240 runes, got %d", len([]rune(s)))
	}
}

func TestMaterialize_PathByteBudget(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	article, outcome, err := w.Materialize(domain.RawPage{
		Title: strings.Repeat("a", 300),
		Text:  fiveLines,
	})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if outcome != port.OutcomeWritten {
		t.Fatalf("expected written outcome, got %v", outcome)
	}
	if len(article.Path) > 255 {
		t.Errorf("path exceeds 255 bytes: %d", len(article.Path))
	}
	if !strings.HasSuffix(article.Path, "....md") {
		t.Errorf("expected truncation marker in %q", article.Path)
	}
	// Shard stays intact; only the filename is truncated.
	if filepath.Base(filepath.Dir(article.Path)) != "aa" {
		t.Errorf("shard was modified: %s", article.Path)
	}
	if _, err := os.Stat(article.Path); err != nil {
		t.Errorf("truncated article not written: %v", err)
	}
}

func TestMaterialize_OverwritesByPath(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	page := domain.RawPage{Title: "Same Title", Text: fiveLines}
	first, _, err := w.Materialize(page)
	if err != nil {
		t.Fatal(err)
	}

	page.Text = "New one\nNew two\nNew three\nNew four\nNew five"
	second, _, err := w.Materialize(page)
	if err != nil {
		t.Fatal(err)
	}
	if first.Path != second.Path {
		t.Fatalf("paths differ across reruns: %s vs %s", first.Path, second.Path)
	}

	data, _ := os.ReadFile(second.Path)
	if !strings.Contains(string(data), "New five") {
		t.Errorf("rerun did not overwrite content")
	}
}

func assertNoFiles(t *testing.T, root string) {
	t.Helper()
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			t.Errorf("unexpected file written: %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
