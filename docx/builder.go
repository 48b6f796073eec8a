// Package docx writes chatdocx Documents as Office Open XML word-processing
// packages. Part XML is built with beevik/etree.
package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/chatdocx"
)

// Page geometry in twentieths of a point (A4, one inch margins).
const (
	pageWidth   = 11906
	pageHeight  = 16838
	pageMargin  = 1440
	textWidth   = pageWidth - 2*pageMargin
	defaultFill = "auto"
)

// Numbering definition IDs written to numbering.xml.
const (
	bulletNumID    = 1
	bulletAbstract = 0
	numberAbstract = 1
)

// Builder accumulates document content in order and writes it as a DOCX
// package. A Builder is used for a single document.
type Builder struct {
	style chatdocx.RenderStyle

	doc  *etree.Document
	body *etree.Element

	title string

	// Each run of consecutive numbered items gets its own numbering
	// instance so every list starts again at 1.
	numberNumIDs []int
	inNumbered   bool
}

// NewBuilder creates an empty Builder using style.
func NewBuilder(style chatdocx.RenderStyle) *Builder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	return &Builder{
		style: style,
		doc:   doc,
		body:  root.CreateElement("w:body"),
	}
}

// AddHeading appends a heading paragraph of the given level (1 to 3).
func (b *Builder) AddHeading(level int, text string, rtl bool) {
	b.endList()
	if level < 1 {
		level = 1
	} else if level > 3 {
		level = 3
	}
	if b.title == "" {
		b.title = text
	}

	p := b.body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")
	setVal(pPr.CreateElement("w:pStyle"), "Heading"+strconv.Itoa(level))
	if rtl {
		pPr.CreateElement("w:bidi")
	}
	addRun(p, chatdocx.Run{Text: text}, runFormat{rtl: chatdocx.IsRTL(text)})
}

// AddParagraph appends a paragraph made of runs.
func (b *Builder) AddParagraph(runs []chatdocx.Run, rtl bool) {
	b.endList()

	p := b.body.CreateElement("w:p")
	if rtl {
		p.CreateElement("w:pPr").CreateElement("w:bidi")
	}
	for _, run := range runs {
		addRun(p, run, runFormat{rtl: chatdocx.IsRTL(run.Text)})
	}
}

// AddListItem appends one list paragraph. Consecutive numbered items
// continue the same sequence; any other block in between restarts it.
func (b *Builder) AddListItem(style chatdocx.ListStyle, text string, rtl bool) {
	styleID, numID := "ListBullet", bulletNumID
	if style == chatdocx.ListNumber {
		if !b.inNumbered {
			b.numberNumIDs = append(b.numberNumIDs, bulletNumID+len(b.numberNumIDs)+1)
			b.inNumbered = true
		}
		styleID, numID = "ListNumber", b.numberNumIDs[len(b.numberNumIDs)-1]
	} else {
		b.endList()
	}

	p := b.body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")
	setVal(pPr.CreateElement("w:pStyle"), styleID)
	numPr := pPr.CreateElement("w:numPr")
	setVal(numPr.CreateElement("w:ilvl"), "0")
	setVal(numPr.CreateElement("w:numId"), strconv.Itoa(numID))
	if rtl {
		pPr.CreateElement("w:bidi")
	}
	addRun(p, chatdocx.Run{Text: text}, runFormat{rtl: chatdocx.IsRTL(text)})
}

// AddTable appends a bordered table. Row 0 is styled as a bold, centered
// header that repeats on each page. rtl lays the columns out right to left.
func (b *Builder) AddTable(rows [][]string, rtl bool) {
	b.endList()
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}
	cols := len(rows[0])
	colWidth := textWidth / cols

	tbl := b.body.CreateElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")
	setVal(tblPr.CreateElement("w:tblStyle"), "TableGrid")
	if rtl {
		tblPr.CreateElement("w:bidiVisual")
	}
	setWidth(tblPr.CreateElement("w:tblW"), 0, "auto")

	grid := tbl.CreateElement("w:tblGrid")
	for i := 0; i < cols; i++ {
		grid.CreateElement("w:gridCol").CreateAttr("w:w", strconv.Itoa(colWidth))
	}

	for i, row := range rows {
		header := i == 0
		tr := tbl.CreateElement("w:tr")
		if header {
			tr.CreateElement("w:trPr").CreateElement("w:tblHeader")
		}
		for _, text := range row {
			tc := tr.CreateElement("w:tc")
			tcPr := tc.CreateElement("w:tcPr")
			setWidth(tcPr.CreateElement("w:tcW"), colWidth, "dxa")
			if header && b.style.HeaderShading != "" {
				shade(tcPr, b.style.HeaderShading)
			}

			cellRTL := chatdocx.IsRTL(text)
			p := tc.CreateElement("w:p")
			if cellRTL || header {
				pPr := p.CreateElement("w:pPr")
				if cellRTL {
					pPr.CreateElement("w:bidi")
				}
				if header {
					setVal(pPr.CreateElement("w:jc"), "center")
				}
			}
			if text != "" {
				addRun(p, chatdocx.Run{Text: text, Bold: header}, runFormat{rtl: cellRTL})
			}
		}
	}

	b.addSpacer()
}

// AddCodeBlock appends text verbatim in a monospace font inside a shaded
// single-cell table. Newlines become line breaks and tabs become tabs.
func (b *Builder) AddCodeBlock(text string) {
	b.endList()

	tbl := b.body.CreateElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")
	setWidth(tblPr.CreateElement("w:tblW"), textWidth, "dxa")
	tbl.CreateElement("w:tblGrid").CreateElement("w:gridCol").CreateAttr("w:w", strconv.Itoa(textWidth))

	tc := tbl.CreateElement("w:tr").CreateElement("w:tc")
	tcPr := tc.CreateElement("w:tcPr")
	setWidth(tcPr.CreateElement("w:tcW"), textWidth, "dxa")
	if b.style.CodeShading != "" {
		shade(tcPr, b.style.CodeShading)
	}

	p := tc.CreateElement("w:p")
	spacing := p.CreateElement("w:pPr").CreateElement("w:spacing")
	spacing.CreateAttr("w:after", "0")

	r := p.CreateElement("w:r")
	rPr := r.CreateElement("w:rPr")
	if b.style.CodeFont != "" {
		fonts := rPr.CreateElement("w:rFonts")
		for _, attr := range []string{"w:ascii", "w:hAnsi", "w:cs"} {
			fonts.CreateAttr(attr, b.style.CodeFont)
		}
	}
	if b.style.CodeFontSize > 0 {
		halfPoints := strconv.Itoa(b.style.CodeFontSize * 2)
		setVal(rPr.CreateElement("w:sz"), halfPoints)
		setVal(rPr.CreateElement("w:szCs"), halfPoints)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.CreateElement("w:br")
		}
		for j, segment := range strings.Split(line, "\t") {
			if j > 0 {
				r.CreateElement("w:tab")
			}
			if segment != "" {
				addText(r, segment)
			}
		}
	}

	b.addSpacer()
}

// Title returns the text of the first heading, used as the document title.
func (b *Builder) Title() string {
	return b.title
}

// addSpacer adds an empty paragraph after a table so that two tables in a
// row stay separate.
func (b *Builder) addSpacer() {
	b.body.CreateElement("w:p")
}

func (b *Builder) endList() {
	b.inNumbered = false
}

// finish appends the section properties. It must be called once, after
// the last block.
func (b *Builder) finish() {
	sectPr := b.body.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", strconv.Itoa(pageWidth))
	pgSz.CreateAttr("w:h", strconv.Itoa(pageHeight))
	pgMar := sectPr.CreateElement("w:pgMar")
	for _, side := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
		pgMar.CreateAttr(side, strconv.Itoa(pageMargin))
	}
	pgMar.CreateAttr("w:header", "708")
	pgMar.CreateAttr("w:footer", "708")
	pgMar.CreateAttr("w:gutter", "0")
}

type runFormat struct {
	rtl bool
}

// addRun appends a w:r for run to p.
func addRun(p *etree.Element, run chatdocx.Run, f runFormat) {
	r := p.CreateElement("w:r")
	if run.Bold || run.Italic || f.rtl {
		rPr := r.CreateElement("w:rPr")
		if run.Bold {
			rPr.CreateElement("w:b")
			rPr.CreateElement("w:bCs")
		}
		if run.Italic {
			rPr.CreateElement("w:i")
			rPr.CreateElement("w:iCs")
		}
		if f.rtl {
			rPr.CreateElement("w:rtl")
		}
	}
	addText(r, run.Text)
}

func addText(r *etree.Element, text string) {
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(sanitize(text))
}

func setVal(e *etree.Element, val string) {
	e.CreateAttr("w:val", val)
}

func setWidth(e *etree.Element, w int, typ string) {
	e.CreateAttr("w:w", strconv.Itoa(w))
	e.CreateAttr("w:type", typ)
}

// shade sets the background fill of a cell.
func shade(tcPr *etree.Element, fill string) {
	shd := tcPr.CreateElement("w:shd")
	shd.CreateAttr("w:val", "clear")
	shd.CreateAttr("w:color", defaultFill)
	shd.CreateAttr("w:fill", strings.ToUpper(fill))
}

// sanitize drops runes that are not allowed in XML 1.0 documents.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case r >= 0x20 && r <= 0xD7FF,
			r >= 0xE000 && r <= 0xFFFD,
			r >= 0x10000 && r <= 0x10FFFF:
			return r
		}
		return -1
	}, s)
}
