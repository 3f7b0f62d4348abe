// Package index builds and queries persistent bleve indexes over the
// materialized articles.
package index

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Field names shared by writers and searchers.
const (
	FieldPath    = "path"
	FieldTitle   = "title"
	FieldContent = "content"
)

// Mode selects which schema an index uses.
type Mode int

const (
	// ModeTitle indexes article titles: path stored untokenized,
	// title stored and stem-tokenized.
	ModeTitle Mode = iota
	// ModeContent indexes full article bodies: path stored
	// untokenized, content stem-tokenized but not stored.
	ModeContent
)

func (m Mode) String() string {
	if m == ModeContent {
		return "content"
	}
	return "title"
}

// Field returns the tokenized search field for the mode.
func (m Mode) Field() string {
	if m == ModeContent {
		return FieldContent
	}
	return FieldTitle
}

// buildMapping creates the bleve mapping for a mode. Tokenized fields
// use the English analyzer (case folding + porter stemming) so query
// terms match morphological variants; path is a pure retrieval key and
// uses the keyword analyzer.
func buildMapping(mode Mode) mapping.IndexMapping {
	doc := bleve.NewDocumentMapping()

	pathField := bleve.NewTextFieldMapping()
	pathField.Analyzer = keyword.Name
	pathField.Store = true
	pathField.IncludeInAll = false
	pathField.IncludeTermVectors = false
	doc.AddFieldMappingsAt(FieldPath, pathField)

	switch mode {
	case ModeContent:
		contentField := bleve.NewTextFieldMapping()
		contentField.Analyzer = en.AnalyzerName
		contentField.Store = false
		doc.AddFieldMappingsAt(FieldContent, contentField)
	default:
		titleField := bleve.NewTextFieldMapping()
		titleField.Analyzer = en.AnalyzerName
		titleField.Store = true
		doc.AddFieldMappingsAt(FieldTitle, titleField)
	}

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	im.DefaultAnalyzer = en.AnalyzerName
	return im
}
