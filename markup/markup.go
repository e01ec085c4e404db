// Package markup renders post content from CommonMark to HTML.
package markup

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"gitlab.com/golang-commonmark/markdown"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Raw HTML is not passed through, because any user can write posts.
var parser = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// Render converts CommonMark to HTML. Links to other hosts get rel="nofollow noopener".
func Render(content string) template.HTML {
	rendered := parser.RenderToString([]byte(content))
	if result, err := nofollow(rendered); err == nil {
		return template.HTML(result)
	}
	return template.HTML(rendered) // markdown output is safe without the rewrite
}

func nofollow(fragment string) (string, error) {

	body, err := parseBody(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	forEach(body, func(node *html.Node) {
		if node.Type != html.ElementNode || node.DataAtom != atom.A {
			return
		}
		for _, attr := range node.Attr {
			if attr.Key == "href" && isExternal(attr.Val) {
				setAttr(node, "rel", "nofollow noopener")
				return
			}
		}
	})

	var buf = &bytes.Buffer{}
	for node := body.FirstChild; node != nil; node = node.NextSibling {
		if err := html.Render(buf, node); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func isExternal(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "//")
}

func setAttr(node *html.Node, key, val string) {
	for i := range node.Attr {
		if node.Attr[i].Key == key {
			node.Attr[i].Val = val
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: val})
}

// parseBody parses an HTML fragment and returns the body node which contains it.
func parseBody(r io.Reader) (*html.Node, error) {
	parsed, err := html.ParseFragment(
		io.MultiReader(
			strings.NewReader("<body>"),
			r,
			strings.NewReader("</body>"),
		),
		&html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Html,
			Data:     "html",
		},
	)
	if err != nil {
		return nil, err
	}
	return parsed[1], nil // [0] is head, [1] is body
}

// forEach calls task for root and its descendants in pre-order.
func forEach(root *html.Node, task func(*html.Node)) {
	task(root)
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		forEach(child, task)
	}
}
