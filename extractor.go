package chatdocx

// Normalizer removes noise from HTML before it is walked: scripts and
// styles, comments, framework-injected attributes, UI chrome and
// pass-through wrapper tags.
type Normalizer interface {
	// NormalizeHTML returns the cleaned inner HTML of the document body.
	NormalizeHTML(html string) (string, error)
}

// Extractor turns HTML into an ordered sequence of Blocks.
type Extractor interface {
	// Extract parses, normalizes and walks html. Input without a body
	// yields an empty Document and no error.
	Extract(html string) (*Document, error)
}

// Previewer renders the normalized form of HTML as human-readable text so
// users can inspect what the walker will see.
type Previewer interface {
	Preview(html string) (string, error)
}
