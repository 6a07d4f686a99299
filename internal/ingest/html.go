// Package ingest loads promotional materials from disk and normalizes
// them to plain text for the analysis engine.
package ingest

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractText parses HTML and returns its visible text, one block-level
// element per line so the engine's line-oriented detectors see the same
// structure a reader does.
func ExtractText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && isBlockElement(n.Data) {
			buf.WriteString("\n")
		}
	}

	walk(doc)
	return buf.String(), nil
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "li", "br", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "section", "article":
		return true
	}
	return false
}
