package port

import "wikidex/internal/domain"

// Catalog records materialized articles and running ingest counters.
type Catalog interface {
	PutArticle(article domain.Article, size int64) error
	CountArticles() (int64, error)
	UpdateStats(stats domain.IngestStats) error
	GetStats() (domain.IngestStats, error)
	Close() error
}
