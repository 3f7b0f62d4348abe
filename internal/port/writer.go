package port

import "wikidex/internal/domain"

// WriteOutcome reports what the materializer did with a page.
type WriteOutcome int

const (
	OutcomeWritten WriteOutcome = iota
	OutcomeSkippedEmpty
	OutcomeSkippedShort
	OutcomeSkippedRedirect
)

// ArticleWriter materializes a raw page as a cleaned article file,
// or skips it per the filtering rules.
type ArticleWriter interface {
	Materialize(page domain.RawPage) (domain.Article, WriteOutcome, error)
}
