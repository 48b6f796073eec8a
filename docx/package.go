package docx

import (
	"archive/zip"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/chatdocx"
)

// XML namespaces used by the package parts.
const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes    = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCore     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC       = "http://purl.org/dc/elements/1.1/"
	nsExtended = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
)

const application = "chatdocx"

type part struct {
	name string
	doc  *etree.Document
}

// WriteTo finishes the document and writes the complete DOCX package to w.
// The output depends only on the content added, so identical input always
// produces identical bytes.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.finish()

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []part{
		{"[Content_Types].xml", contentTypes()},
		{"_rels/.rels", packageRels()},
		{"docProps/core.xml", coreProps(b.title)},
		{"docProps/app.xml", appProps()},
		{"word/document.xml", b.doc},
		{"word/styles.xml", styles(b.style)},
		{"word/numbering.xml", numbering(b.numberNumIDs)},
		{"word/_rels/document.xml.rels", documentRels()},
	}
	for _, p := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate})
		if err != nil {
			return cw.n, chatdocx.Errorf(chatdocx.ECONVERSION, "failed to create %s: %v", p.name, err)
		}
		if _, err := p.doc.WriteTo(f); err != nil {
			return cw.n, chatdocx.Errorf(chatdocx.ECONVERSION, "failed to write %s: %v", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, chatdocx.Errorf(chatdocx.ECONVERSION, "failed to finish package: %v", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func newPart(root, ns string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	e := doc.CreateElement(root)
	e.CreateAttr("xmlns", ns)
	return doc, e
}

func contentTypes() *etree.Document {
	doc, types := newPart("Types", nsTypes)

	addDefault := func(ext, ct string) {
		d := types.CreateElement("Default")
		d.CreateAttr("Extension", ext)
		d.CreateAttr("ContentType", ct)
	}
	addOverride := func(name, ct string) {
		o := types.CreateElement("Override")
		o.CreateAttr("PartName", name)
		o.CreateAttr("ContentType", ct)
	}

	addDefault("rels", "application/vnd.openxmlformats-package.relationships+xml")
	addDefault("xml", "application/xml")
	addOverride("/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml")
	addOverride("/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml")
	addOverride("/word/numbering.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml")
	addOverride("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	addOverride("/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml")
	return doc
}

func relationships(rels ...[2]string) *etree.Document {
	doc, root := newPart("Relationships", nsPkgRels)
	for i, rel := range rels {
		r := root.CreateElement("Relationship")
		r.CreateAttr("Id", "rId"+strconv.Itoa(i+1))
		r.CreateAttr("Type", rel[0])
		r.CreateAttr("Target", rel[1])
	}
	return doc
}

func packageRels() *etree.Document {
	return relationships(
		[2]string{relOfficeDocument, "word/document.xml"},
		[2]string{relCoreProps, "docProps/core.xml"},
		[2]string{relExtendedProps, "docProps/app.xml"},
	)
}

func documentRels() *etree.Document {
	return relationships(
		[2]string{relStyles, "styles.xml"},
		[2]string{relNumbering, "numbering.xml"},
	)
}

func coreProps(title string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("cp:coreProperties")
	root.CreateAttr("xmlns:cp", nsCore)
	root.CreateAttr("xmlns:dc", nsDC)
	if title != "" {
		root.CreateElement("dc:title").SetText(sanitize(title))
	}
	root.CreateElement("dc:creator").SetText(application)
	return doc
}

func appProps() *etree.Document {
	doc, root := newPart("Properties", nsExtended)
	root.CreateElement("Application").SetText(application)
	return doc
}

func wordPart(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	e := doc.CreateElement(root)
	e.CreateAttr("xmlns:w", nsW)
	return doc, e
}

// headingSizes holds the half-point font size of Heading1 to Heading3.
var headingSizes = [3]int{32, 26, 24}

func styles(style chatdocx.RenderStyle) *etree.Document {
	doc, root := wordPart("w:styles")

	rPrDefault := root.CreateElement("w:docDefaults").CreateElement("w:rPrDefault").CreateElement("w:rPr")
	if style.BodyFont != "" {
		fonts := rPrDefault.CreateElement("w:rFonts")
		for _, attr := range []string{"w:ascii", "w:hAnsi", "w:eastAsia", "w:cs"} {
			fonts.CreateAttr(attr, style.BodyFont)
		}
	}
	setVal(rPrDefault.CreateElement("w:sz"), "22")
	setVal(rPrDefault.CreateElement("w:szCs"), "22")

	normal := newStyle(root, "paragraph", "Normal", "Normal")
	normal.CreateAttr("w:default", "1")
	normal.CreateElement("w:qFormat")
	spacing := normal.CreateElement("w:pPr").CreateElement("w:spacing")
	spacing.CreateAttr("w:after", "160")
	spacing.CreateAttr("w:line", "259")
	spacing.CreateAttr("w:lineRule", "auto")

	for i, size := range headingSizes {
		level := strconv.Itoa(i + 1)
		h := newStyle(root, "paragraph", "Heading"+level, "heading "+level)
		setVal(h.CreateElement("w:basedOn"), "Normal")
		setVal(h.CreateElement("w:next"), "Normal")
		h.CreateElement("w:qFormat")
		pPr := h.CreateElement("w:pPr")
		pPr.CreateElement("w:keepNext")
		sp := pPr.CreateElement("w:spacing")
		sp.CreateAttr("w:before", "240")
		sp.CreateAttr("w:after", "120")
		setVal(pPr.CreateElement("w:outlineLvl"), strconv.Itoa(i))
		rPr := h.CreateElement("w:rPr")
		rPr.CreateElement("w:b")
		rPr.CreateElement("w:bCs")
		setVal(rPr.CreateElement("w:sz"), strconv.Itoa(size))
		setVal(rPr.CreateElement("w:szCs"), strconv.Itoa(size))
	}

	for _, id := range []string{"ListBullet", "ListNumber"} {
		name := "List Bullet"
		if id == "ListNumber" {
			name = "List Number"
		}
		l := newStyle(root, "paragraph", id, name)
		setVal(l.CreateElement("w:basedOn"), "Normal")
		l.CreateElement("w:pPr").CreateElement("w:contextualSpacing")
	}

	tableNormal := newStyle(root, "table", "TableNormal", "Normal Table")
	tableNormal.CreateAttr("w:default", "1")
	mar := tableNormal.CreateElement("w:tblPr").CreateElement("w:tblCellMar")
	for _, side := range []string{"w:left", "w:right"} {
		setWidth(mar.CreateElement(side), 108, "dxa")
	}

	grid := newStyle(root, "table", "TableGrid", "Table Grid")
	setVal(grid.CreateElement("w:basedOn"), "TableNormal")
	borders := grid.CreateElement("w:tblPr").CreateElement("w:tblBorders")
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"} {
		border := borders.CreateElement(side)
		border.CreateAttr("w:val", "single")
		border.CreateAttr("w:sz", "4")
		border.CreateAttr("w:space", "0")
		border.CreateAttr("w:color", defaultFill)
	}

	return doc
}

func newStyle(root *etree.Element, typ, id, name string) *etree.Element {
	s := root.CreateElement("w:style")
	s.CreateAttr("w:type", typ)
	s.CreateAttr("w:styleId", id)
	setVal(s.CreateElement("w:name"), name)
	return s
}

// numbering writes a bullet definition and a decimal definition. The
// bullet list uses a single instance; numbered lists get one instance per
// entry of numberNumIDs, each restarting at 1.
func numbering(numberNumIDs []int) *etree.Document {
	doc, root := wordPart("w:numbering")

	abstract := func(id int, format, text string) {
		a := root.CreateElement("w:abstractNum")
		a.CreateAttr("w:abstractNumId", strconv.Itoa(id))
		setVal(a.CreateElement("w:multiLevelType"), "singleLevel")
		lvl := a.CreateElement("w:lvl")
		lvl.CreateAttr("w:ilvl", "0")
		setVal(lvl.CreateElement("w:start"), "1")
		setVal(lvl.CreateElement("w:numFmt"), format)
		setVal(lvl.CreateElement("w:lvlText"), text)
		setVal(lvl.CreateElement("w:lvlJc"), "left")
		ind := lvl.CreateElement("w:pPr").CreateElement("w:ind")
		ind.CreateAttr("w:left", "720")
		ind.CreateAttr("w:hanging", "360")
	}
	abstract(bulletAbstract, "bullet", "•")
	abstract(numberAbstract, "decimal", "%1.")

	num := func(id, abstractID int) *etree.Element {
		n := root.CreateElement("w:num")
		n.CreateAttr("w:numId", strconv.Itoa(id))
		setVal(n.CreateElement("w:abstractNumId"), strconv.Itoa(abstractID))
		return n
	}
	num(bulletNumID, bulletAbstract)
	for _, id := range numberNumIDs {
		override := num(id, numberAbstract).CreateElement("w:lvlOverride")
		override.CreateAttr("w:ilvl", "0")
		setVal(override.CreateElement("w:startOverride"), "1")
	}

	return doc
}
