// Package convert orchestrates a single HTML to document conversion: it
// checks the destination, extracts blocks, renders them and saves the
// result atomically.
package convert

import (
	"fmt"
	"io"

	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/docx"
	"github.com/fwojciec/chatdocx/fs"
	"github.com/fwojciec/chatdocx/goquery"
)

// Ensure Engine implements chatdocx.Converter at compile time.
var _ chatdocx.Converter = (*Engine)(nil)

// Engine converts HTML into a document file.
type Engine struct {
	Extractor   chatdocx.Extractor
	Renderer    chatdocx.Renderer
	Destination chatdocx.Destination
}

// New creates an Engine wired with the goquery extractor, the DOCX
// renderer and the file system destination.
func New(cfg *chatdocx.Config) *Engine {
	if cfg == nil {
		cfg = chatdocx.DefaultConfig()
	}
	return &Engine{
		Extractor:   goquery.NewExtractor(cfg.Normalize),
		Renderer:    docx.NewRenderer(cfg.Style),
		Destination: fs.NewDestination(),
	}
}

// Convert writes the document for html to outputPath. The destination is
// checked before any parsing so a locked file fails fast with EUNWRITABLE.
// Extraction and rendering failures, including panics, are reported as
// ECONVERSION. The existing file is replaced only on success.
func (e *Engine) Convert(html, outputPath string) error {
	if err := e.Destination.CheckWritable(outputPath); err != nil {
		return asCode(err, chatdocx.EUNWRITABLE)
	}

	doc, err := e.extract(html)
	if err != nil {
		return err
	}

	err = e.Destination.Save(outputPath, func(w io.Writer) error {
		return e.render(w, doc)
	})
	if err != nil {
		return asCode(err, chatdocx.EUNWRITABLE)
	}
	return nil
}

func (e *Engine) extract(html string) (doc *chatdocx.Document, err error) {
	defer recoverConversion("extract", &err)

	doc, err = e.Extractor.Extract(html)
	if err != nil {
		return nil, asCode(err, chatdocx.ECONVERSION)
	}
	return doc, nil
}

func (e *Engine) render(w io.Writer, doc *chatdocx.Document) (err error) {
	defer recoverConversion("render", &err)

	if err := e.Renderer.Render(w, doc); err != nil {
		return asCode(err, chatdocx.ECONVERSION)
	}
	return nil
}

// recoverConversion turns a panic in stage into an ECONVERSION error.
func recoverConversion(stage string, err *error) {
	if r := recover(); r != nil {
		*err = chatdocx.Errorf(chatdocx.ECONVERSION, "%s panicked: %v", stage, r)
	}
}

// asCode keeps application errors as they are and wraps anything else
// with code.
func asCode(err error, code string) error {
	if chatdocx.ErrorCode(err) != chatdocx.EINTERNAL {
		return err
	}
	return &chatdocx.Error{Code: code, Message: err.Error()}
}

// Convert converts html to a DOCX file at outputPath using the default
// configuration. An empty outputPath selects chatdocx.DefaultOutputPath.
// It reports whether the file was written; the existing file is left
// untouched on failure.
func Convert(html, outputPath string) bool {
	if outputPath == "" {
		outputPath = chatdocx.DefaultOutputPath
	}
	return New(nil).Convert(html, outputPath) == nil
}

// Describe returns a one-line, user-facing description of a conversion
// error.
func Describe(err error, outputPath string) string {
	switch chatdocx.ErrorCode(err) {
	case "":
		return ""
	case chatdocx.EUNWRITABLE:
		return fmt.Sprintf("cannot write %s: close the file if it is open in another program", outputPath)
	case chatdocx.ECONVERSION:
		return fmt.Sprintf("conversion failed: %s", chatdocx.ErrorMessage(err))
	default:
		return chatdocx.ErrorMessage(err)
	}
}
