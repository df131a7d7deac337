package keywords

import (
	"strings"

	"golang.org/x/net/html"
)

// Plaintext returns the text content of an HTML fragment, with script and style elements
// removed and entities decoded. Text without markup is returned unchanged.
func Plaintext(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}

	var b strings.Builder
	var extract func(*html.Node)

	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}

		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				b.WriteString(s)
				b.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}

	extract(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}
