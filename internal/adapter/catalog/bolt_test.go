package catalog

import (
	"path/filepath"
	"testing"

	"wikidex/internal/domain"
)

func openTestCatalog(t *testing.T) *BoltCatalog {
	t.Helper()
	cat, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() { cat.Close() })
	return cat
}

func TestCatalog_PutAndCount(t *testing.T) {
	cat := openTestCatalog(t)

	articles := []domain.Article{
		{Title: "Alpha", Path: "articles/al/Alpha.md"},
		{Title: "Beta", Path: "articles/be/Beta.md"},
	}
	for _, a := range articles {
		if err := cat.PutArticle(a, 100); err != nil {
			t.Fatalf("put %s: %v", a.Title, err)
		}
	}

	// Re-recording the same path must not inflate the count.
	if err := cat.PutArticle(articles[0], 120); err != nil {
		t.Fatal(err)
	}

	n, err := cat.CountArticles()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 articles, got %d", n)
	}
}

func TestCatalog_StatsRoundTrip(t *testing.T) {
	cat := openTestCatalog(t)

	fresh, err := cat.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if fresh.PagesSeen != 0 || fresh.Written != 0 {
		t.Errorf("fresh catalog should report zero stats, got %+v", fresh)
	}

	stats := domain.IngestStats{
		PagesSeen:       100,
		Written:         60,
		SkippedEmpty:    10,
		SkippedShort:    25,
		SkippedRedirect: 5,
	}
	if err := cat.UpdateStats(stats); err != nil {
		t.Fatal(err)
	}

	got, err := cat.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if got != stats {
		t.Errorf("expected %+v, got %+v", stats, got)
	}
	if got.Skipped() != 40 {
		t.Errorf("expected 40 skipped, got %d", got.Skipped())
	}
}
