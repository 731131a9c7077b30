package connector

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node is a structural query over a parsed HTML tree. Lookups take an
// ordered chain of CSS selectors and stop at the first selector that
// yields a match.
type Node interface {
	// First returns the first descendant matching any of the selectors,
	// trying each selector in order
	First(selectors ...string) (Node, bool)

	// All returns the matches of the first selector that yields any,
	// in document order
	All(selectors ...string) []Node

	// Attr returns the trimmed value of the named attribute; absent or
	// empty attributes report false
	Attr(name string) (string, bool)

	// Text returns the trimmed text content of the node
	Text() string
}

// ParseDocument parses HTML from a reader into a queryable root Node
func ParseDocument(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return htmlNode{sel: doc.Selection}, nil
}

// htmlNode adapts a goquery selection to the Node interface
type htmlNode struct {
	sel *goquery.Selection
}

func (n htmlNode) First(selectors ...string) (Node, bool) {
	for _, selector := range selectors {
		if m := n.sel.Find(selector).First(); m.Length() > 0 {
			return htmlNode{sel: m}, true
		}
	}
	return nil, false
}

func (n htmlNode) All(selectors ...string) []Node {
	for _, selector := range selectors {
		m := n.sel.Find(selector)
		if m.Length() == 0 {
			continue
		}
		nodes := make([]Node, 0, m.Length())
		m.Each(func(_ int, s *goquery.Selection) {
			nodes = append(nodes, htmlNode{sel: s})
		})
		return nodes
	}
	return nil
}

func (n htmlNode) Attr(name string) (string, bool) {
	value, exists := n.sel.Attr(name)
	value = strings.TrimSpace(value)
	if !exists || value == "" {
		return "", false
	}
	return value, true
}

func (n htmlNode) Text() string {
	return strings.TrimSpace(n.sel.Text())
}
