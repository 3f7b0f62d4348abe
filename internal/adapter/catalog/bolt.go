// Package catalog keeps a durable record of materialized articles.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
	"wikidex/internal/domain"
)

var (
	bucketArticles = []byte("articles")
	bucketStats    = []byte("stats")
	keyIngestStats = []byte("ingest_stats")
)

type BoltCatalog struct {
	db *bbolt.DB
}

func Open(path string) (*BoltCatalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketArticles, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltCatalog{db: db}, nil
}

type articleMeta struct {
	Title string `json:"title"`
	Size  int64  `json:"size"`
}

// PutArticle records one written article keyed by its path.
func (c *BoltCatalog) PutArticle(article domain.Article, size int64) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(articleMeta{Title: article.Title, Size: size})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketArticles).Put([]byte(article.Path), data)
	})
}

// CountArticles returns the number of recorded articles.
func (c *BoltCatalog) CountArticles() (int64, error) {
	var n int64
	err := c.db.View(func(tx *bbolt.Tx) error {
		n = int64(tx.Bucket(bucketArticles).Stats().KeyN)
		return nil
	})
	return n, err
}

// UpdateStats stores the counters of the latest ingestion run.
func (c *BoltCatalog) UpdateStats(stats domain.IngestStats) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyIngestStats, data)
	})
}

// GetStats returns the counters of the latest ingestion run. A fresh
// catalog returns zero stats.
func (c *BoltCatalog) GetStats() (domain.IngestStats, error) {
	var stats domain.IngestStats
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyIngestStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (c *BoltCatalog) Close() error {
	return c.db.Close()
}
