package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatdocx"
)

// Ensure Extractor implements chatdocx.Extractor at compile time.
var _ chatdocx.Extractor = (*Extractor)(nil)

// Extractor parses HTML, normalizes it and walks it into Blocks.
type Extractor struct {
	normalizer *Normalizer
	walker     *Walker
}

// NewExtractor creates an Extractor that normalizes with the given rules.
func NewExtractor(rules chatdocx.NormalizeRules) *Extractor {
	return &Extractor{
		normalizer: NewNormalizer(rules),
		walker:     NewWalker(),
	}
}

// Extract converts raw HTML into an ordered Document.
func (e *Extractor) Extract(raw string) (*chatdocx.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, chatdocx.Errorf(chatdocx.ECONVERSION, "failed to parse HTML: %v", err)
	}

	e.normalizer.Normalize(doc)
	return e.walker.Walk(doc), nil
}
