package port

import "wikidex/internal/domain"

// Searcher runs ranked queries against one field of a committed index.
type Searcher interface {
	Search(query, field string, limit int) ([]domain.ScoredResult, error)
	Close() error
}
