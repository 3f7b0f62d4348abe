package domain

// RawPage is one page pulled from the dump stream before any cleanup.
type RawPage struct {
	Title string
	Text  string
}

// Article is a cleaned page ready to be written to disk.
type Article struct {
	Title string
	Body  string
	Path  string
}

// ScoredResult is a single ranked search hit.
type ScoredResult struct {
	Title string  `json:"title"`
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// IngestStats counts the outcomes of one ingestion run.
type IngestStats struct {
	PagesSeen       int64
	Written         int64
	SkippedEmpty    int64
	SkippedShort    int64
	SkippedRedirect int64
}

// Skipped is the total number of pages that were not materialized.
func (s IngestStats) Skipped() int64 {
	return s.SkippedEmpty + s.SkippedShort + s.SkippedRedirect
}

// BuildResult summarizes one index build.
type BuildResult struct {
	FilesSeen   int
	DocsIndexed int
	Skipped     int
}
