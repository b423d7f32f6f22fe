package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// Parse parses raw markup into a document tree. The parser is tolerant of
// malformed markup, matching browser behavior.
func Parse(content string) (*html.Node, error) {
	return html.Parse(strings.NewReader(content))
}

// Text returns the trimmed concatenation of all text nodes under n.
func Text(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return strings.TrimSpace(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// FindAll returns every element node under n (inclusive) with the given
// tag name, in document order.
func FindAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	walk(n, func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
		}
	})
	return out
}

// FindAllWithAttr returns every element node under n with the given tag
// name whose attribute key equals val, in document order.
func FindAllWithAttr(n *html.Node, tag, key, val string) []*html.Node {
	var out []*html.Node
	walk(n, func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag && Attr(node, key) == val {
			out = append(out, node)
		}
	})
	return out
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
