// Package goquery implements HTML normalization and block extraction
// using goquery over golang.org/x/net/html parse trees.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatdocx"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements chatdocx.Normalizer at compile time.
var _ chatdocx.Normalizer = (*Normalizer)(nil)

// Normalizer strips noise from parsed HTML. The rules are applied in a
// fixed order and running the Normalizer on its own output changes nothing.
type Normalizer struct {
	junkMarkers []string
	passThrough map[string]bool
	attrPrefix  string
}

// NewNormalizer creates a Normalizer for the given rules.
func NewNormalizer(rules chatdocx.NormalizeRules) *Normalizer {
	n := &Normalizer{
		passThrough: make(map[string]bool, len(rules.PassThroughTags)),
		attrPrefix:  strings.ToLower(rules.ReservedAttrPrefix),
	}
	for _, marker := range rules.JunkMarkers {
		if marker != "" {
			n.junkMarkers = append(n.junkMarkers, marker)
		}
	}
	for _, tag := range rules.PassThroughTags {
		n.passThrough[strings.ToLower(tag)] = true
	}
	return n
}

// Normalize cleans doc in place.
func (n *Normalizer) Normalize(doc *goquery.Document) {
	doc.Find("script, style").Remove()

	root := doc.Get(0)
	if root == nil {
		return
	}

	removeNodes(collectNodes(root, isComment))
	n.stripReservedAttrs(doc)
	n.removeJunk(root)
	n.unwrapPassThrough(root)

	// Merging text can join a marker split across unwrapped wrappers, and
	// removing junk can leave text nodes adjacent again.
	for {
		mergeAdjacentText(root)
		if !n.removeJunk(root) {
			break
		}
	}
}

// NormalizeHTML parses html, normalizes it and returns the inner HTML of
// the body. Returns an empty string if the input has no body.
func (n *Normalizer) NormalizeHTML(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", chatdocx.Errorf(chatdocx.ECONVERSION, "failed to parse HTML: %v", err)
	}

	n.Normalize(doc)

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", nil
	}

	out, err := body.Html()
	if err != nil {
		return "", chatdocx.Errorf(chatdocx.ECONVERSION, "failed to render HTML: %v", err)
	}
	return out, nil
}

// stripReservedAttrs drops every attribute whose name starts with the
// reserved prefix, keeping the others in their original order.
func (n *Normalizer) stripReservedAttrs(doc *goquery.Document) {
	if n.attrPrefix == "" {
		return
	}
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			kept := node.Attr[:0]
			for _, attr := range node.Attr {
				if !strings.HasPrefix(strings.ToLower(attr.Key), n.attrPrefix) {
					kept = append(kept, attr)
				}
			}
			node.Attr = kept
		}
	})
}

// removeJunk removes the nearest element containing a junk marker.
// The document skeleton (html, head, body) is never removed; junk text
// sitting directly inside it is removed on its own. Reports whether
// anything was removed.
func (n *Normalizer) removeJunk(root *html.Node) bool {
	if len(n.junkMarkers) == 0 {
		return false
	}

	junk := collectNodes(root, n.isJunkText)
	for _, text := range junk {
		if text.Parent == nil {
			continue
		}
		target := n.owner(text)
		if target.Type == html.ElementNode && !isSkeleton(target) {
			if target.Parent != nil {
				target.Parent.RemoveChild(target)
			}
			continue
		}
		text.Parent.RemoveChild(text)
	}
	return len(junk) > 0
}

// owner returns the nearest ancestor of text that survives unwrapping,
// skipping pass-through wrappers.
func (n *Normalizer) owner(text *html.Node) *html.Node {
	p := text.Parent
	for p.Parent != nil && p.Type == html.ElementNode && n.passThrough[p.Data] {
		p = p.Parent
	}
	return p
}

func (n *Normalizer) isJunkText(node *html.Node) bool {
	if node.Type != html.TextNode {
		return false
	}
	for _, marker := range n.junkMarkers {
		if strings.Contains(node.Data, marker) {
			return true
		}
	}
	return false
}

// unwrapPassThrough replaces each pass-through element with its children.
func (n *Normalizer) unwrapPassThrough(root *html.Node) {
	if len(n.passThrough) == 0 {
		return
	}

	wrappers := collectNodes(root, func(node *html.Node) bool {
		return node.Type == html.ElementNode && n.passThrough[node.Data]
	})
	for _, w := range wrappers {
		unwrap(w)
	}
}

// unwrap splices the children of node into its parent at node's position
// and removes node.
func unwrap(node *html.Node) {
	parent := node.Parent
	if parent == nil {
		return
	}
	for c := node.FirstChild; c != nil; c = node.FirstChild {
		node.RemoveChild(c)
		parent.InsertBefore(c, node)
	}
	parent.RemoveChild(node)
}

// mergeAdjacentText joins sibling text nodes left next to each other by
// unwrapping, so the tree matches what a fresh parse of its HTML produces.
func mergeAdjacentText(node *html.Node) {
	for c := node.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.TextNode && next != nil && next.Type == html.TextNode {
			c.Data += next.Data
			node.RemoveChild(next)
			continue
		}
		mergeAdjacentText(c)
		c = next
	}
}

// collectNodes returns all nodes under root matching match, in document
// order. Collecting first lets callers mutate the tree safely afterwards.
func collectNodes(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if match(node) {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	return out
}

func removeNodes(nodes []*html.Node) {
	for _, node := range nodes {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
	}
}

func isComment(node *html.Node) bool {
	return node.Type == html.CommentNode
}

func isSkeleton(node *html.Node) bool {
	switch node.Data {
	case "html", "head", "body":
		return true
	}
	return false
}
