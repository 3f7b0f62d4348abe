package usecase

import (
	"fmt"
	"os"
	"strings"

	"wikidex/internal/adapter/index"
	"wikidex/internal/domain"
	"wikidex/internal/port"
)

// LookupUseCase answers ranked title lookups against a committed
// title index. It is read-only and safe for concurrent callers.
type LookupUseCase struct {
	searcher port.Searcher
	topK     int
}

func NewLookupUseCase(searcher port.Searcher, topK int) *LookupUseCase {
	if topK < 1 {
		topK = 5
	}
	return &LookupUseCase{searcher: searcher, topK: topK}
}

// LookupByTitle returns the top ranked title matches for a query.
func (u *LookupUseCase) LookupByTitle(query string, limit int) ([]domain.ScoredResult, error) {
	if limit < 1 {
		limit = u.topK
	}
	return u.searcher.Search(query, index.FieldTitle, limit)
}

// BestArticle runs a title search and disambiguates with the
// word-intersection heuristic. Returns nil when nothing matched.
func (u *LookupUseCase) BestArticle(query string) (*domain.ScoredResult, error) {
	results, err := u.LookupByTitle(query, u.topK)
	if err != nil {
		return nil, err
	}
	return ChooseBestArticle(query, results), nil
}

// ChooseBestArticle scores each candidate by the size of the
// intersection between the lower-cased word sets of the query and the
// candidate title. The largest intersection wins; ties break on the
// raw search score. A deliberately simple disambiguation step, not a
// ranker; the tie-break order is part of the contract.
func ChooseBestArticle(query string, results []domain.ScoredResult) *domain.ScoredResult {
	if len(results) == 0 {
		return nil
	}

	queryWords := wordSet(query)

	var best *domain.ScoredResult
	bestMatch := -1
	for i := range results {
		match := 0
		for word := range wordSet(results[i].Title) {
			if _, ok := queryWords[word]; ok {
				match++
			}
		}
		if match > bestMatch || (match == bestMatch && results[i].Score > best.Score) {
			best = &results[i]
			bestMatch = match
		}
	}
	return best
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// ArticleSample reads up to maxBytes of the article at path, for
// consumers that want a content preview alongside the hit.
func (u *LookupUseCase) ArticleSample(path string, maxBytes int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read article %s: %w", path, err)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		data = data[:maxBytes]
	}
	return string(data), nil
}
