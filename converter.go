package chatdocx

import (
	"io"
	"strings"
)

// DefaultOutputPath is the file name used when no output path is given.
const DefaultOutputPath = "formatted_output.docx"

// Converter converts HTML content into a document file.
type Converter interface {
	// Convert writes the document for html to outputPath, replacing any
	// existing file. The destination is checked for writability before any
	// conversion work starts; on failure the existing file is left
	// untouched. Use ErrorCode to distinguish EUNWRITABLE from ECONVERSION.
	Convert(html string, outputPath string) error
}

// Renderer serializes a Document into a target file format.
type Renderer interface {
	Render(w io.Writer, doc *Document) error
}

// Destination is the output location of a conversion.
// Implementations are not safe for concurrent use on the same path;
// callers serialize conversions per output path.
type Destination interface {
	// CheckWritable reports whether path can be written without changing
	// any existing content. Returns EUNWRITABLE if it cannot.
	CheckWritable(path string) error

	// Save replaces the file at path with whatever write produces. Either
	// the new content is fully present afterwards or the old file is
	// untouched.
	Save(path string, write func(w io.Writer) error) error
}

// IsLikelyHTML reports whether content looks like an HTML document or
// fragment worth converting: it starts with a doctype, or it starts with
// '<' and ends with '>' after trimming whitespace.
func IsLikelyHTML(content string) bool {
	content = strings.TrimSpace(content)
	if content == "" {
		return false
	}
	if strings.HasPrefix(strings.ToLower(content), "<!doctype html>") {
		return true
	}
	return strings.HasPrefix(content, "<") && strings.HasSuffix(content, ">")
}
