// Package htmltomarkdown renders a Markdown preview of what a conversion
// keeps from an HTML fragment.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/chatdocx"
)

// Ensure Previewer implements chatdocx.Previewer at compile time.
var _ chatdocx.Previewer = (*Previewer)(nil)

// Previewer normalizes HTML and converts the result to Markdown.
type Previewer struct {
	normalizer chatdocx.Normalizer
	conv       *converter.Converter
}

// NewPreviewer creates a Previewer that cleans input with normalizer first.
func NewPreviewer(normalizer chatdocx.Normalizer) *Previewer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Previewer{normalizer: normalizer, conv: conv}
}

// Preview returns the Markdown rendering of the normalized html.
func (p *Previewer) Preview(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", chatdocx.Errorf(chatdocx.EINVALID, "empty HTML input")
	}

	cleaned, err := p.normalizer.NormalizeHTML(html)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(cleaned) == "" {
		return "", nil
	}

	result, err := p.conv.ConvertString(cleaned)
	if err != nil {
		return "", chatdocx.Errorf(chatdocx.ECONVERSION, "failed to convert HTML to Markdown: %v", err)
	}

	return result, nil
}
