package index

import (
	"fmt"
	"os"

	"github.com/blevesearch/bleve/v2"
)

// Writer is the single write path into an index under construction.
// It is not safe for concurrent use; exactly one goroutine may call
// Add/Flush/Close. Documents accumulate in a batch that is flushed
// every batchSize adds and once more on Close.
type Writer struct {
	idx       bleve.Index
	batch     *bleve.Batch
	batchSize int
	pending   int
	mode      Mode
}

// CreateWriter deletes any index at dir and starts a fresh one.
// Rebuilds are wholesale: concurrent readers of the old index must be
// drained before calling this.
func CreateWriter(dir string, mode Mode, batchSize int) (*Writer, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("remove old index: %w", err)
	}

	idx, err := bleve.New(dir, buildMapping(mode))
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	if batchSize <= 0 {
		batchSize = 1000
	}
	return &Writer{
		idx:       idx,
		batch:     idx.NewBatch(),
		batchSize: batchSize,
		mode:      mode,
	}, nil
}

// Add queues one document, keyed by path.
func (w *Writer) Add(path, value string) error {
	doc := map[string]interface{}{
		FieldPath:      path,
		w.mode.Field(): value,
	}
	if err := w.batch.Index(path, doc); err != nil {
		return fmt.Errorf("index %s: %w", path, err)
	}

	w.pending++
	if w.pending >= w.batchSize {
		return w.Flush()
	}
	return nil
}

// Flush commits the pending batch.
func (w *Writer) Flush() error {
	if w.pending == 0 {
		return nil
	}
	if err := w.idx.Batch(w.batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	w.batch = w.idx.NewBatch()
	w.pending = 0
	return nil
}

// Close flushes the final batch and closes the index.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		w.idx.Close()
		return err
	}
	return w.idx.Close()
}
