package port

import "wikidex/internal/domain"

// PageSource yields completed pages from a dump stream one at a time.
// Next returns io.EOF when the stream is exhausted.
type PageSource interface {
	Next() (domain.RawPage, error)
}
