package dom

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// FakePage is an in-memory Page driven by scripted reactions. Tests load a
// markup state, register reactions keyed on the element being clicked or
// hovered, and the reactions mutate the page the way the real host would.
// Snapshot re-parses the current markup every call, so callers get the same
// no-stale-references behavior the real page enforces.
type FakePage struct {
	mu        sync.Mutex
	doc       *goquery.Document
	reactions []reaction

	// Clicks and Hovers record a short description of each dispatched
	// action, in order, for assertions.
	Clicks []string
	Hovers []string
	// Fills records target description -> text.
	Fills map[string]string

	// SnapshotErr, when set, is returned by the next Snapshot call and
	// then cleared.
	SnapshotErr error
}

type eventKind int

const (
	onClick eventKind = iota
	onHover
)

type reaction struct {
	kind  eventKind
	match func(*goquery.Selection) bool
	run   func(p *FakePage, sel *goquery.Selection)
	once  bool
	used  bool
}

// NewFakePage parses markup as the page's initial state.
func NewFakePage(markup string) (*FakePage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return &FakePage{doc: doc, Fills: make(map[string]string)}, nil
}

// MustFakePage is NewFakePage for tests with known-good markup.
func MustFakePage(markup string) *FakePage {
	p, err := NewFakePage(markup)
	if err != nil {
		panic(err)
	}
	return p
}

// OnClick registers a reaction run when a clicked element satisfies match.
func (p *FakePage) OnClick(match func(*goquery.Selection) bool, run func(p *FakePage, sel *goquery.Selection)) {
	p.reactions = append(p.reactions, reaction{kind: onClick, match: match, run: run})
}

// OnClickOnce is OnClick for a reaction that fires at most once.
func (p *FakePage) OnClickOnce(match func(*goquery.Selection) bool, run func(p *FakePage, sel *goquery.Selection)) {
	p.reactions = append(p.reactions, reaction{kind: onClick, match: match, run: run, once: true})
}

// OnHover registers a reaction run when a hovered element satisfies match.
func (p *FakePage) OnHover(match func(*goquery.Selection) bool, run func(p *FakePage, sel *goquery.Selection)) {
	p.reactions = append(p.reactions, reaction{kind: onHover, match: match, run: run})
}

// MatchID matches an element whose id equals id, or that contains one.
func MatchID(id string) func(*goquery.Selection) bool {
	return func(s *goquery.Selection) bool {
		if v, _ := s.Attr("id"); v == id {
			return true
		}
		return s.Find("#"+id).Length() > 0
	}
}

// MatchText matches an element whose text contains substr.
func MatchText(substr string) func(*goquery.Selection) bool {
	return func(s *goquery.Selection) bool {
		return containsFold(s.Text(), substr)
	}
}

// Snapshot returns a fresh parse of the page's current markup.
func (p *FakePage) Snapshot(ctx context.Context) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.SnapshotErr != nil {
		err := p.SnapshotErr
		p.SnapshotErr = nil
		return nil, err
	}
	markup, err := p.doc.Html()
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(markup))
}

// Click resolves t against the live tree and fires matching reactions.
func (p *FakePage) Click(ctx context.Context, t Target) error {
	return p.dispatch(ctx, t, onClick)
}

// Hover resolves t against the live tree and fires matching reactions.
func (p *FakePage) Hover(ctx context.Context, t Target) error {
	return p.dispatch(ctx, t, onHover)
}

func (p *FakePage) dispatch(ctx context.Context, t Target, kind eventKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	sel := t.Resolve(p.doc)
	if sel == nil || len(sel.Nodes) == 0 {
		p.mu.Unlock()
		return fmt.Errorf("target %v not present in page", t.Path)
	}
	desc := describe(sel)
	switch kind {
	case onClick:
		p.Clicks = append(p.Clicks, desc)
	case onHover:
		p.Hovers = append(p.Hovers, desc)
	}
	var matched []*reaction
	for i := range p.reactions {
		r := &p.reactions[i]
		if r.kind != kind || r.used || !r.match(sel) {
			continue
		}
		if r.once {
			r.used = true
		}
		matched = append(matched, r)
	}
	p.mu.Unlock()

	// Reactions run unlocked so they can use the mutation helpers.
	for _, r := range matched {
		r.run(p, sel)
	}
	return nil
}

// Fill resolves t and records the text, also writing it into the element so
// later snapshots reflect it.
func (p *FakePage) Fill(ctx context.Context, t Target, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	sel := t.Resolve(p.doc)
	if sel == nil || len(sel.Nodes) == 0 {
		return fmt.Errorf("target %v not present in page", t.Path)
	}
	switch goquery.NodeName(sel) {
	case "input":
		sel.SetAttr("value", text)
	case "textarea":
		sel.SetText(text)
	default:
		sel.SetText(text)
	}
	p.Fills[describe(sel)] = text
	return nil
}

// Mutation helpers for reactions. All operate on the live tree, so the next
// Snapshot sees the change.

// AppendHTML appends markup inside the first element matching selector.
func (p *FakePage) AppendHTML(selector, markup string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.Find(selector).First().AppendHtml(markup)
}

// SetHTML replaces the contents of the first element matching selector.
func (p *FakePage) SetHTML(selector, markup string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.Find(selector).First().SetHtml(markup)
}

// Remove deletes all elements matching selector.
func (p *FakePage) Remove(selector string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.Find(selector).Remove()
}

// SetAttr sets an attribute on all elements matching selector.
func (p *FakePage) SetAttr(selector, name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.Find(selector).SetAttr(name, value)
}

// RemoveAttr removes an attribute from all elements matching selector.
func (p *FakePage) RemoveAttr(selector, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.Find(selector).RemoveAttr(name)
}

// ClickedAny reports whether any recorded click description contains substr.
func (p *FakePage) ClickedAny(substr string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.Clicks {
		if containsFold(c, substr) {
			return true
		}
	}
	return false
}

func describe(sel *goquery.Selection) string {
	name := goquery.NodeName(sel)
	if id, ok := sel.Attr("id"); ok && id != "" {
		return name + "#" + id
	}
	text := strings.TrimSpace(sel.Text())
	if len(text) > 40 {
		text = text[:40]
	}
	if text != "" {
		return name + "(" + text + ")"
	}
	return name
}

var _ Page = (*FakePage)(nil)
