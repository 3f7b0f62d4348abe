package usecase

import (
	"errors"
	"fmt"
	"io"

	"wikidex/internal/domain"
	"wikidex/internal/port"
)

// IngestUseCase drives the dump-to-articles pipeline. It is strictly
// sequential per page: read, normalize, write, repeat. The parser
// never runs ahead of the writer, which bounds memory to one page.
type IngestUseCase struct {
	source  port.PageSource
	writer  port.ArticleWriter
	catalog port.Catalog
}

// NewIngestUseCase creates an ingest use case. catalog may be nil when
// no durable record is wanted.
func NewIngestUseCase(source port.PageSource, writer port.ArticleWriter, catalog port.Catalog) *IngestUseCase {
	return &IngestUseCase{
		source:  source,
		writer:  writer,
		catalog: catalog,
	}
}

// IngestProgress is called periodically with the running counters.
type IngestProgress func(stats domain.IngestStats)

// Run consumes the whole page stream. Skips are counted, not errors;
// a malformed stream or a failed write aborts the run with the
// counters gathered so far.
func (u *IngestUseCase) Run(onProgress IngestProgress) (domain.IngestStats, error) {
	var stats domain.IngestStats

	for {
		page, err := u.source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("malformed dump stream: %w", err)
		}
		stats.PagesSeen++

		article, outcome, err := u.writer.Materialize(page)
		if err != nil {
			return stats, fmt.Errorf("materialize %q: %w", page.Title, err)
		}

		switch outcome {
		case port.OutcomeWritten:
			stats.Written++
			if u.catalog != nil {
				if err := u.catalog.PutArticle(article, int64(len(article.Body))); err != nil {
					return stats, fmt.Errorf("record %q in catalog: %w", article.Title, err)
				}
			}
		case port.OutcomeSkippedEmpty:
			stats.SkippedEmpty++
		case port.OutcomeSkippedShort:
			stats.SkippedShort++
		case port.OutcomeSkippedRedirect:
			stats.SkippedRedirect++
		}

		if onProgress != nil && stats.PagesSeen%1000 == 0 {
			onProgress(stats)
		}
	}

	if u.catalog != nil {
		if err := u.catalog.UpdateStats(stats); err != nil {
			return stats, fmt.Errorf("save ingest stats: %w", err)
		}
	}

	return stats, nil
}
