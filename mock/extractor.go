package mock

import "github.com/fwojciec/chatdocx"

var _ chatdocx.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of chatdocx.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*chatdocx.Document, error)
}

func (e *Extractor) Extract(html string) (*chatdocx.Document, error) {
	return e.ExtractFn(html)
}

var _ chatdocx.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of chatdocx.Normalizer.
type Normalizer struct {
	NormalizeHTMLFn func(html string) (string, error)
}

func (n *Normalizer) NormalizeHTML(html string) (string, error) {
	return n.NormalizeHTMLFn(html)
}

var _ chatdocx.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of chatdocx.Previewer.
type Previewer struct {
	PreviewFn func(html string) (string, error)
}

func (p *Previewer) Preview(html string) (string, error) {
	return p.PreviewFn(html)
}
