package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatdocx"
	"golang.org/x/net/html"
)

// handleHeading converts h1, h2 or h3 into a Heading.
func handleHeading(tag chatdocx.BlockTag, s *goquery.Selection) chatdocx.Block {
	text := collapseText(s.Text())
	if text == "" {
		return nil
	}
	return &chatdocx.Heading{
		Level: int(tag-chatdocx.TagH1) + 1,
		Text:  text,
		RTL:   chatdocx.IsRTL(text),
	}
}

// handleParagraph converts p or div into a Paragraph, one run per immediate
// child.
func handleParagraph(s *goquery.Selection) chatdocx.Block {
	var nodes []*goquery.Selection
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		nodes = append(nodes, c)
	})
	return paragraph(nodes)
}

// paragraph builds a Paragraph from sibling nodes, one run per node. Text
// nodes keep their literal text so spacing between runs survives; elements
// are flattened to their visible text. Returns nil when nothing visible
// remains.
func paragraph(nodes []*goquery.Selection) chatdocx.Block {
	var runs []chatdocx.Run
	for _, c := range nodes {
		node := c.Get(0)

		var run chatdocx.Run
		switch node.Type {
		case html.TextNode:
			run = chatdocx.Run{Text: node.Data}
		case html.ElementNode:
			switch node.Data {
			case "strong", "b":
				run = chatdocx.Run{Text: c.Text(), Bold: true}
			case "em", "i":
				run = chatdocx.Run{Text: c.Text(), Italic: true}
			default:
				run = chatdocx.Run{Text: c.Text()}
			}
		default:
			continue
		}

		if run.Text != "" {
			runs = append(runs, run)
		}
	}

	p := &chatdocx.Paragraph{Runs: runs}
	text := p.Text()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	p.RTL = chatdocx.IsRTL(text)
	return p
}

// handleList converts the direct li children of ul or ol into ListItems.
// Nested lists are flattened into the text of their parent item.
func handleList(style chatdocx.ListStyle, s *goquery.Selection) []chatdocx.Block {
	var items []chatdocx.Block
	s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		text := collapseText(li.Text())
		if text == "" {
			return
		}
		items = append(items, &chatdocx.ListItem{
			Style: style,
			Text:  text,
			RTL:   chatdocx.IsRTL(text),
		})
	})
	return items
}

// handleTable converts a table into a rectangular Table. The first row
// fixes the column count: shorter rows are padded with empty cells and
// longer rows are truncated.
func handleTable(s *goquery.Selection) chatdocx.Block {
	var rows [][]string
	s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, collapseText(cell.Text()))
		})
		rows = append(rows, cells)
	})
	if len(rows) == 0 {
		return nil
	}

	cols := len(rows[0])
	visible := false
	for i, row := range rows {
		shaped := make([]string, cols)
		copy(shaped, row)
		rows[i] = shaped
		for _, cell := range shaped {
			if cell != "" {
				visible = true
			}
		}
	}
	if !visible {
		return nil
	}

	rtl := false
	for _, cell := range rows[0] {
		if chatdocx.IsRTL(cell) {
			rtl = true
			break
		}
	}

	return &chatdocx.Table{Rows: rows, RTL: rtl}
}

// handleCodeBlock converts pre into a CodeBlock holding the raw text with
// newlines and indentation intact. Code blocks are emitted even when blank.
func handleCodeBlock(s *goquery.Selection) chatdocx.Block {
	return &chatdocx.CodeBlock{Text: s.Text()}
}

// collapseText collapses runs of whitespace to single spaces and trims
// the ends.
func collapseText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
