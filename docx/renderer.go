package docx

import (
	"io"

	"github.com/fwojciec/chatdocx"
)

// Ensure Renderer implements chatdocx.Renderer at compile time.
var _ chatdocx.Renderer = (*Renderer)(nil)

// Renderer writes Documents as DOCX packages.
type Renderer struct {
	style chatdocx.RenderStyle
}

// NewRenderer creates a Renderer using style.
func NewRenderer(style chatdocx.RenderStyle) *Renderer {
	return &Renderer{style: style}
}

// Render writes doc to w as a complete DOCX package.
func (r *Renderer) Render(w io.Writer, doc *chatdocx.Document) error {
	b := NewBuilder(r.style)
	if doc != nil {
		for _, block := range doc.Blocks {
			add(b, block)
		}
	}
	_, err := b.WriteTo(w)
	return err
}

func add(b *Builder, block chatdocx.Block) {
	switch v := block.(type) {
	case *chatdocx.Heading:
		b.AddHeading(v.Level, v.Text, v.RTL)
	case *chatdocx.Paragraph:
		b.AddParagraph(v.Runs, v.RTL)
	case *chatdocx.ListItem:
		b.AddListItem(v.Style, v.Text, v.RTL)
	case *chatdocx.Table:
		b.AddTable(v.Rows, v.RTL)
	case *chatdocx.CodeBlock:
		b.AddCodeBlock(v.Text)
	}
}
