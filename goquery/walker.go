package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatdocx"
	"golang.org/x/net/html"
)

// blockSelector matches every tag in the block whitelist.
const blockSelector = "h1, h2, h3, p, div, ul, ol, pre, table"

// Walker traverses a normalized document in pre-order starting at the body
// and converts whitelisted elements into Blocks. A dispatched element owns
// its whole subtree, so nested whitelisted elements are never visited twice.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns the Blocks of doc in document order. A document without a
// body yields an empty Document.
func (w *Walker) Walk(doc *goquery.Document) *chatdocx.Document {
	out := &chatdocx.Document{}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return out
	}

	body.Children().Each(func(_ int, s *goquery.Selection) {
		w.visit(s, out)
	})
	return out
}

func (w *Walker) visit(s *goquery.Selection, out *chatdocx.Document) {
	tag, ok := chatdocx.ParseBlockTag(goquery.NodeName(s))
	switch {
	case ok && !isContainer(tag, s):
		for _, b := range dispatch(tag, s) {
			out.Append(b)
		}
	case ok:
		w.visitContainer(s, out)
	default:
		s.Children().Each(func(_ int, c *goquery.Selection) {
			w.visit(c, out)
		})
	}
}

// visitContainer walks the children of a p or div that wraps block
// elements. Each stretch of text and inline elements between block
// children becomes a Paragraph at its position.
func (w *Walker) visitContainer(s *goquery.Selection, out *chatdocx.Document) {
	var stretch []*goquery.Selection
	flush := func() {
		if len(stretch) > 0 {
			out.Append(paragraph(stretch))
			stretch = nil
		}
	}

	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if !holdsBlocks(c) {
			stretch = append(stretch, c)
			return
		}
		flush()
		w.visit(c, out)
	})
	flush()
}

// holdsBlocks reports whether c is a whitelisted element or contains one.
func holdsBlocks(c *goquery.Selection) bool {
	node := c.Get(0)
	if node.Type != html.ElementNode {
		return false
	}
	if _, ok := chatdocx.ParseBlockTag(node.Data); ok {
		return true
	}
	return c.Find(blockSelector).Length() > 0
}

// dispatch hands s to the handler for tag.
func dispatch(tag chatdocx.BlockTag, s *goquery.Selection) []chatdocx.Block {
	switch tag {
	case chatdocx.TagH1, chatdocx.TagH2, chatdocx.TagH3:
		return single(handleHeading(tag, s))
	case chatdocx.TagP, chatdocx.TagDiv:
		return single(handleParagraph(s))
	case chatdocx.TagUL:
		return handleList(chatdocx.ListBullet, s)
	case chatdocx.TagOL:
		return handleList(chatdocx.ListNumber, s)
	case chatdocx.TagPre:
		return single(handleCodeBlock(s))
	case chatdocx.TagTable:
		return single(handleTable(s))
	}
	return nil
}

// isContainer reports whether a p or div wraps other block elements.
// Such elements are layout wrappers: the walker descends into them instead
// of flattening their content into one paragraph.
func isContainer(tag chatdocx.BlockTag, s *goquery.Selection) bool {
	if tag != chatdocx.TagP && tag != chatdocx.TagDiv {
		return false
	}
	return s.Find(blockSelector).Length() > 0
}

func single(b chatdocx.Block) []chatdocx.Block {
	if b == nil {
		return nil
	}
	return []chatdocx.Block{b}
}
