package mock

import (
	"io"

	"github.com/fwojciec/chatdocx"
)

var _ chatdocx.Converter = (*Converter)(nil)

// Converter is a mock implementation of chatdocx.Converter.
type Converter struct {
	ConvertFn func(html, outputPath string) error
}

func (c *Converter) Convert(html, outputPath string) error {
	return c.ConvertFn(html, outputPath)
}

var _ chatdocx.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of chatdocx.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, doc *chatdocx.Document) error
}

func (r *Renderer) Render(w io.Writer, doc *chatdocx.Document) error {
	return r.RenderFn(w, doc)
}

var _ chatdocx.Destination = (*Destination)(nil)

// Destination is a mock implementation of chatdocx.Destination.
type Destination struct {
	CheckWritableFn func(path string) error
	SaveFn          func(path string, write func(w io.Writer) error) error
}

func (d *Destination) CheckWritable(path string) error {
	return d.CheckWritableFn(path)
}

func (d *Destination) Save(path string, write func(w io.Writer) error) error {
	return d.SaveFn(path, write)
}
