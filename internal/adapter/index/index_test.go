package index

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

type titleDoc struct {
	path  string
	title string
}

var fixedCorpus = []titleDoc{
	{"articles/al/Alpha_Centauri.md", "Alpha Centauri"},
	{"articles/al/Alpha_Romeo.md", "Alpha Romeo"},
	{"articles/be/Beta_Cygni.md", "Beta Cygni"},
}

func buildTitleIndex(t *testing.T, dir string, docs []titleDoc) {
	t.Helper()
	w, err := CreateWriter(dir, ModeTitle, 2)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	for _, d := range docs {
		if err := w.Add(d.path, d.title); err != nil {
			t.Fatalf("add %s: %v", d.path, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func TestTitleIndex_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "title_index")
	buildTitleIndex(t, dir, fixedCorpus)

	s, err := OpenSearcher(dir)
	if err != nil {
		t.Fatalf("open searcher: %v", err)
	}
	defer s.Close()

	results, err := s.Search("Alpha", FieldTitle, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 hits for Alpha, got %d: %+v", len(results), results)
	}
	for _, r := range results {
		if !strings.HasPrefix(r.Title, "Alpha") {
			t.Errorf("non-Alpha title ranked for Alpha query: %+v", r)
		}
	}

	results, err = s.Search("Centauri", FieldTitle, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 hit for Centauri, got %d", len(results))
	}
	if results[0].Title != "Alpha Centauri" {
		t.Errorf("expected Alpha Centauri, got %q", results[0].Title)
	}
	if results[0].Path != "articles/al/Alpha_Centauri.md" {
		t.Errorf("path not preserved: %q", results[0].Path)
	}
	if results[0].Score <= 0 {
		t.Errorf("expected positive score, got %f", results[0].Score)
	}
}

func TestTitleIndex_StemmedMatching(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "title_index")
	buildTitleIndex(t, dir, []titleDoc{
		{"articles/ru/Running_Shoes.md", "Running Shoes"},
		{"articles/gl/Glass_Blowing.md", "Glass Blowing"},
	})

	s, err := OpenSearcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Query and index share the stemming analyzer, so "run shoe"
	// matches the document indexed as "Running Shoes".
	results, err := s.Search("run shoe", FieldTitle, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("expected a stemmed match for 'run shoe'")
	}
	if results[0].Title != "Running Shoes" {
		t.Errorf("expected Running Shoes first, got %q", results[0].Title)
	}
}

func TestContentIndex_SearchByBody(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content_index")

	w, err := CreateWriter(dir, ModeContent, 10)
	if err != nil {
		t.Fatal(err)
	}
	docs := map[string]string{
		"articles/pi/Piano.md":  "# Piano\n\nA keyboard instrument with hammers striking strings.",
		"articles/vi/Violin.md": "# Violin\n\nA bowed string instrument held at the shoulder.",
	}
	for path, content := range docs {
		if err := w.Add(path, content); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	s, err := OpenSearcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	results, err := s.Search("hammers", FieldContent, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 hit for hammers, got %d", len(results))
	}
	if results[0].Path != "articles/pi/Piano.md" {
		t.Errorf("expected Piano article, got %q", results[0].Path)
	}
}

func TestRebuild_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "title_index")
	queries := []string{"Alpha", "Centauri", "Cygni"}

	type hit struct {
		title string
		score float64
	}
	run := func() map[string][]hit {
		buildTitleIndex(t, dir, fixedCorpus)
		s, err := OpenSearcher(dir)
		if err != nil {
			t.Fatal(err)
		}
		defer s.Close()

		out := make(map[string][]hit)
		for _, q := range queries {
			results, err := s.Search(q, FieldTitle, 10)
			if err != nil {
				t.Fatal(err)
			}
			for _, r := range results {
				out[q] = append(out[q], hit{r.Title, r.Score})
			}
		}
		return out
	}

	first := run()
	second := run()

	for _, q := range queries {
		a, b := first[q], second[q]
		if len(a) != len(b) {
			t.Fatalf("query %q: hit counts differ across rebuilds: %d vs %d", q, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("query %q hit %d differs across rebuilds: %+v vs %+v", q, i, a[i], b[i])
			}
		}
	}
}

func TestOpenSearcher_MissingIndex(t *testing.T) {
	_, err := OpenSearcher(filepath.Join(t.TempDir(), "never_built"))
	if err == nil {
		t.Fatal("expected an error for a missing index")
	}
	if !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("expected ErrIndexNotFound, got %v", err)
	}
}

func TestCreateWriter_ReplacesOldIndex(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "title_index")
	buildTitleIndex(t, dir, fixedCorpus)

	// Rebuild with a smaller corpus; the old documents must be gone.
	buildTitleIndex(t, dir, fixedCorpus[:1])

	s, err := OpenSearcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	n, err := s.DocCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 doc after rebuild, got %d", n)
	}
}
