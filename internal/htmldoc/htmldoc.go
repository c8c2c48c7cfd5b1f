// Package htmldoc provides HTML-to-visible-text normalization for resume documents.
// It parses potentially malformed HTML and exposes the document as an ordered
// sequence of text-bearing elements.
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element is one text-bearing unit of the document, in document order.
// Tag is the lowercase tag name of the heading or enclosing block element.
type Element struct {
	Tag  string
	Text string
}

// Document is the normalized view of one parsed HTML document.
type Document struct {
	elements []Element
}

// Parse builds a Document from raw HTML. Malformed markup does not fail:
// the parser recovers and the document holds whatever text was salvageable.
func Parse(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	// Remove elements that never contribute visible text.
	doc.Find("script, style, noscript").Remove()

	d := &Document{}
	root := doc.Find("body")
	nodes := root.Nodes
	if len(nodes) == 0 {
		nodes = doc.Selection.Nodes
	}

	var line strings.Builder
	var lineTag string

	flush := func() {
		text := collapseSpaces(line.String())
		line.Reset()
		if text == "" {
			return
		}
		tag := lineTag
		if tag == "" {
			tag = "p"
		}
		d.elements = append(d.elements, Element{Tag: tag, Text: text})
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			line.WriteString(n.Data)
			return
		case html.ElementNode:
		default:
			return
		}

		if headingLevel(n.Data) > 0 {
			flush()
			if text := collapseSpaces(textContent(n)); text != "" {
				d.elements = append(d.elements, Element{Tag: n.Data, Text: text})
			}
			return
		}

		switch n.Data {
		case "script", "style", "noscript":
			return
		case "br", "hr":
			flush()
			return
		}

		if isBlock(n.Data) {
			flush()
			prev := lineTag
			lineTag = n.Data
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			flush()
			lineTag = prev
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range nodes {
		walk(n)
	}
	flush()

	return d, nil
}

// Elements returns the document's text-bearing elements in document order.
func (d *Document) Elements() []Element {
	return d.elements
}

// Text returns all element texts joined with newlines.
func (d *Document) Text() string {
	lines := make([]string, 0, len(d.elements))
	for _, el := range d.elements {
		lines = append(lines, el.Text)
	}
	return strings.Join(lines, "\n")
}

// Lines returns each element's text as a separate string.
func (d *Document) Lines() []string {
	lines := make([]string, 0, len(d.elements))
	for _, el := range d.elements {
		lines = append(lines, el.Text)
	}
	return lines
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// blockTags are elements whose boundaries end the current text line.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"header": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true, "tr": true,
	"ul": true,
}

func isBlock(tag string) bool {
	return blockTags[tag]
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

// collapseSpaces reduces all whitespace runs, including non-breaking
// spaces, to single spaces and trims the ends.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
