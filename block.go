package chatdocx

import "strings"

// Block is one semantic unit of output: a heading, paragraph, list item,
// table or code block. The set of implementations is closed; renderers
// switch over the concrete types.
type Block interface {
	block()
}

// Heading is a section heading of level 1, 2 or 3.
type Heading struct {
	Level int
	Text  string
	RTL   bool
}

// Paragraph is a sequence of styled runs in source order.
type Paragraph struct {
	Runs []Run
	RTL  bool
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Run is a styled text span within a paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// ListStyle selects the marker used for a list item.
type ListStyle int

const (
	ListBullet ListStyle = iota
	ListNumber
)

// String returns "bullet" or "number".
func (s ListStyle) String() string {
	switch s {
	case ListBullet:
		return "bullet"
	case ListNumber:
		return "number"
	default:
		return "unknown"
	}
}

// ListItem is a single list entry. Lists are kept flat: a list with n items
// becomes n consecutive ListItem blocks sharing the same Style.
type ListItem struct {
	Style ListStyle
	Text  string
	RTL   bool
}

// Table is a rectangular grid of cell texts. Row 0 is the header row and
// every row has the same number of cells.
type Table struct {
	Rows [][]string
	RTL  bool
}

// Columns returns the number of cells per row.
func (t *Table) Columns() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// CodeBlock is preformatted text rendered verbatim in a monospace font.
type CodeBlock struct {
	Text string
}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*ListItem) block()  {}
func (*Table) block()     {}
func (*CodeBlock) block() {}

// Document is the ordered sequence of blocks produced by one conversion.
type Document struct {
	Blocks []Block
}

// Append adds a block to the end of the document. Nil blocks are ignored.
func (d *Document) Append(b Block) {
	if b == nil {
		return
	}
	d.Blocks = append(d.Blocks, b)
}

// Len returns the number of blocks in the document.
func (d *Document) Len() int {
	return len(d.Blocks)
}

// BlockTag is an HTML tag eligible for conversion into a Block.
type BlockTag int

// BlockTag constants, one per whitelisted tag.
const (
	TagH1 BlockTag = iota + 1
	TagH2
	TagH3
	TagP
	TagDiv
	TagUL
	TagOL
	TagPre
	TagTable
)

var blockTags = map[string]BlockTag{
	"h1":    TagH1,
	"h2":    TagH2,
	"h3":    TagH3,
	"p":     TagP,
	"div":   TagDiv,
	"ul":    TagUL,
	"ol":    TagOL,
	"pre":   TagPre,
	"table": TagTable,
}

// ParseBlockTag returns the BlockTag for an HTML tag name.
// The second result is false if the tag is not in the block whitelist.
func ParseBlockTag(name string) (BlockTag, bool) {
	tag, ok := blockTags[strings.ToLower(name)]
	return tag, ok
}

// String returns the HTML tag name.
func (t BlockTag) String() string {
	for name, tag := range blockTags {
		if tag == t {
			return name
		}
	}
	return ""
}
