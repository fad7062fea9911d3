// Package dom locates and operates controls in an uncooperative,
// internationalized, dynamically-rendered host page.
//
// The host page is owned by a third party: its markup is unversioned and may
// change at any time, its labels follow the user's own UI locale, and its
// elements appear asynchronously. Every lookup therefore runs a layered set
// of strategies against a fresh snapshot, under a bounded timeout, and
// reports absence as a plain not-found result rather than an error.
package dom

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is the minimal driving surface a host-page driver must provide.
// Snapshot must reflect the page as currently rendered; callers never hold
// element references across actions, since any action can re-render the
// page and invalidate them.
type Page interface {
	// Snapshot returns a parse of the page as currently rendered.
	Snapshot(ctx context.Context) (*goquery.Document, error)

	// Click dispatches a click on the element at t.
	Click(ctx context.Context, t Target) error

	// Hover dispatches a hover (mouseover) sequence on the element at t.
	Hover(ctx context.Context, t Target) error

	// Fill replaces the text content of the input element at t.
	Fill(ctx context.Context, t Target, text string) error
}

// Target identifies an element by its child-index path from the document
// root. Paths survive a render/re-parse round trip of the same markup, but
// not a re-render of the host page; they are meant to be used immediately
// after the snapshot that produced them.
type Target struct {
	Path []int
}

// TargetOf computes the Target for the first node of sel. Returns a zero
// Target if sel is empty.
func TargetOf(sel *goquery.Selection) Target {
	if sel == nil || len(sel.Nodes) == 0 {
		return Target{}
	}
	var path []int
	for n := sel.Nodes[0]; n.Parent != nil; n = n.Parent {
		idx := 0
		for sib := n.Parent.FirstChild; sib != n; sib = sib.NextSibling {
			idx++
		}
		path = append([]int{idx}, path...)
	}
	return Target{Path: path}
}

// Resolve walks t's path down doc's node tree. Returns nil if the path no
// longer exists.
func (t Target) Resolve(doc *goquery.Document) *goquery.Selection {
	if doc == nil || len(doc.Nodes) == 0 {
		return nil
	}
	n := doc.Nodes[0]
	for _, idx := range t.Path {
		child := n.FirstChild
		for i := 0; i < idx && child != nil; i++ {
			child = child.NextSibling
		}
		if child == nil {
			return nil
		}
		n = child
	}
	return newSingleSelection(doc, n)
}

// IsZero reports whether t identifies nothing.
func (t Target) IsZero() bool {
	return t.Path == nil
}

func newSingleSelection(doc *goquery.Document, n *html.Node) *goquery.Selection {
	// goquery has no direct node-to-selection constructor; filter the
	// document's descendants down to the one node.
	var out *goquery.Selection
	doc.Find("*").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if s.Nodes[0] == n {
			out = s
			return false
		}
		return true
	})
	return out
}

// Element pairs a matched selection with the target needed to act on it.
type Element struct {
	Sel    *goquery.Selection
	Target Target
}

func elementFor(sel *goquery.Selection) *Element {
	if sel == nil || len(sel.Nodes) == 0 {
		return nil
	}
	return &Element{Sel: sel, Target: TargetOf(sel)}
}

// Text returns the element's trimmed text content.
func (e *Element) Text() string {
	return strings.TrimSpace(e.Sel.Text())
}

// IsVisible reports whether sel would render with non-zero size: neither it
// nor any ancestor is hidden via the hidden attribute, aria-hidden, inline
// display/visibility styles, or explicit zero width/height attributes.
// Geometry is not available from markup alone, so this is the predicate the
// snapshot can support; drivers with real layout information should strip
// invisible elements before snapshotting.
func IsVisible(sel *goquery.Selection) bool {
	if sel == nil || len(sel.Nodes) == 0 {
		return false
	}
	for s := sel; len(s.Nodes) > 0 && s.Nodes[0].Type == html.ElementNode; s = s.Parent() {
		if _, hidden := s.Attr("hidden"); hidden {
			return false
		}
		if v, _ := s.Attr("aria-hidden"); v == "true" {
			return false
		}
		style, _ := s.Attr("style")
		style = strings.ReplaceAll(strings.ToLower(style), " ", "")
		if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
			return false
		}
		if attrIsZero(s, "width") || attrIsZero(s, "height") {
			return false
		}
	}
	return true
}

func attrIsZero(sel *goquery.Selection, name string) bool {
	v, ok := sel.Attr(name)
	if !ok {
		return false
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return v == "0"
}

// isIconSized reports whether sel is plausibly an icon-sized control: it
// declares small width/height attributes, or carries an icon-ish class or
// tag name. Used only by last-resort strategies.
func isIconSized(sel *goquery.Selection) bool {
	if w, ok := attrInt(sel, "width"); ok {
		if h, hok := attrInt(sel, "height"); hok {
			return w > 0 && h > 0 && w <= 48 && h <= 48
		}
	}
	if class, _ := sel.Attr("class"); strings.Contains(strings.ToLower(class), "icon") {
		return true
	}
	return strings.Contains(strings.ToLower(goquery.NodeName(sel)), "icon")
}

func attrInt(sel *goquery.Selection, name string) (int, bool) {
	v, ok := sel.Attr(name)
	if !ok {
		return 0, false
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// containsFold reports whether s contains substr case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
