package index

import (
	"errors"
	"fmt"
	"os"

	"github.com/blevesearch/bleve/v2"
	"wikidex/internal/domain"
)

// ErrIndexNotFound distinguishes "no index built yet" from other
// failures so callers can tell the user to run the build first.
var ErrIndexNotFound = errors.New("index not found")

// Searcher runs ranked queries against a committed index. It is safe
// for concurrent readers; it must not be open while the same index
// directory is being rebuilt.
type Searcher struct {
	idx bleve.Index
}

// OpenSearcher opens an existing index read path.
func OpenSearcher(dir string) (*Searcher, error) {
	idx, err := bleve.Open(dir)
	if err != nil {
		if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) || os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run 'wikidex index' first)", ErrIndexNotFound, dir)
		}
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Searcher{idx: idx}, nil
}

// Search parses the query against one field with the same analyzer
// family used at index time, so stemming applies symmetrically, and
// returns at most limit hits by descending score. Tie order among
// equal scores follows index order and is not stable across rebuilds.
func (s *Searcher) Search(query, field string, limit int) ([]domain.ScoredResult, error) {
	mq := bleve.NewMatchQuery(query)
	mq.SetField(field)

	req := bleve.NewSearchRequestOptions(mq, limit, 0, false)
	req.Fields = []string{FieldTitle, FieldPath}

	res, err := s.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", field, err)
	}

	results := make([]domain.ScoredResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		r := domain.ScoredResult{Path: hit.ID, Score: hit.Score}
		if title, ok := hit.Fields[FieldTitle].(string); ok {
			r.Title = title
		}
		if path, ok := hit.Fields[FieldPath].(string); ok {
			r.Path = path
		}
		results = append(results, r)
	}
	return results, nil
}

// DocCount reports the number of indexed documents.
func (s *Searcher) DocCount() (uint64, error) {
	return s.idx.DocCount()
}

func (s *Searcher) Close() error {
	return s.idx.Close()
}
