package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MediaKind is the kind of embeddable element an attachment becomes.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaImage MediaKind = "image"
)

// MediaKindOf maps a "major/minor" MIME type onto a MediaKind using its
// major type. ok is false for anything that cannot be embedded.
func MediaKindOf(mimeType string) (kind MediaKind, ok bool) {
	major, _, _ := strings.Cut(mimeType, "/")
	switch MediaKind(major) {
	case MediaVideo, MediaAudio, MediaImage:
		return MediaKind(major), true
	default:
		return "", false
	}
}

// Media is an element to embed in content.
type Media struct {
	Kind MediaKind
	Src  string
}

// Content is an editable HTML fragment held under a detached container.
type Content struct {
	root *html.Node
}

// ParseContent parses s as the body of a <div>.
func ParseContent(s string) (*Content, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(s), root)
	if err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Content{root: root}, nil
}

// ClearChildren detaches every child of n. Calling it on an empty node is a
// no-op.
func ClearChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// Clear empties the content.
func (c *Content) Clear() {
	ClearChildren(c.root)
}

// Text returns the concatenated text of every text node, like a DOM
// element's textContent.
func (c *Content) Text() string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(c.root)
	return b.String()
}

// FirstSrc returns the src attribute of the first element named tag, in
// document order.
func (c *Content) FirstSrc(tag string) (string, bool) {
	n := find(c.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	})
	if n == nil {
		return "", false
	}
	return attr(n, "src"), true
}

// Count returns how many elements named tag the content holds.
func (c *Content) Count(tag string) int {
	count := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			count++
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(c.root)
	return count
}

// Media returns the embedded elements of the content in document order.
func (c *Content) Media() []Media {
	var out []Media
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Img:
				out = append(out, Media{Kind: MediaImage, Src: attr(n, "src")})
			case atom.Video:
				out = append(out, Media{Kind: MediaVideo, Src: attr(n, "src")})
			case atom.Audio:
				out = append(out, Media{Kind: MediaAudio, Src: attr(n, "src")})
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(c.root)
	return out
}

// Append adds m at the end of the content as a non-editable element; video
// and audio get playback controls.
func (c *Content) Append(m Media) {
	var el *html.Node
	switch m.Kind {
	case MediaVideo:
		el = element(atom.Video, m.Src, true)
	case MediaAudio:
		el = element(atom.Audio, m.Src, true)
	default:
		el = element(atom.Img, m.Src, false)
	}
	c.root.AppendChild(el)
}

// String renders the content back to HTML.
func (c *Content) String() string {
	var buf bytes.Buffer
	for n := c.root.FirstChild; n != nil; n = n.NextSibling {
		// only the writer can fail, and bytes.Buffer does not
		_ = html.Render(&buf, n)
	}
	return buf.String()
}

func element(a atom.Atom, src string, controls bool) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	n.Attr = append(n.Attr, html.Attribute{Key: "src", Val: src})
	if controls {
		n.Attr = append(n.Attr, html.Attribute{Key: "controls"})
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "contenteditable", Val: "false"})
	return n
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := find(ch, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
