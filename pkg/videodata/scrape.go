package videodata

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// parseWatchPage extracts the title and channel name from a watch page.
// The channel name is carried by a <link itemprop="name" content="...">
// element in the page head.
func parseWatchPage(r io.Reader) (*Video, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("videodata: parse page: %w", err)
	}

	var v Video
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "title":
			if v.Title == "" && n.FirstChild != nil {
				v.Title = n.FirstChild.Data
			}
		case "link":
			if v.AuthorName == "" && attr(n, "itemprop") == "name" {
				v.AuthorName = attr(n, "content")
			}
		}
	})
	return &v, nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
