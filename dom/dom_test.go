package dom

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestTargetRoundTrip(t *testing.T) {
	page := MustFakePage(`<html><body><div id="a"><span>one</span><span id="x">two</span></div></body></html>`)

	doc, err := page.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	sel := doc.Find("#x")
	if sel.Length() != 1 {
		t.Fatal("setup: #x not found")
	}
	target := TargetOf(sel)
	if target.IsZero() {
		t.Fatal("target should not be zero")
	}

	// The path must resolve to the same element in a fresh snapshot.
	doc2, err := page.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	resolved := target.Resolve(doc2)
	if resolved == nil {
		t.Fatal("target did not resolve")
	}
	if id, _ := resolved.Attr("id"); id != "x" {
		t.Errorf("resolved id = %q, want x", id)
	}
	if strings.TrimSpace(resolved.Text()) != "two" {
		t.Errorf("resolved text = %q", resolved.Text())
	}
}

func TestTargetResolveStalePath(t *testing.T) {
	page := MustFakePage(`<html><body><div><span id="x">two</span></div></body></html>`)

	doc, _ := page.Snapshot(context.Background())
	target := TargetOf(doc.Find("#x"))

	// Mutate the page so the path no longer exists.
	page.Remove("div")
	doc2, _ := page.Snapshot(context.Background())
	if sel := target.Resolve(doc2); sel != nil && sel.Length() > 0 {
		t.Errorf("stale path should not resolve, got %q", sel.Text())
	}
}

func TestIsVisible(t *testing.T) {
	markup := `<html><body>
		<button id="plain">ok</button>
		<button id="hidden-attr" hidden>no</button>
		<button id="aria" aria-hidden="true">no</button>
		<button id="display" style="display: none">no</button>
		<button id="visibility" style="color:red; visibility:hidden">no</button>
		<button id="zero" width="0" height="20">no</button>
		<div style="display:none"><button id="buried">no</button></div>
		<div style="color:blue"><button id="styled-parent">ok</button></div>
	</body></html>`
	page := MustFakePage(markup)
	doc, _ := page.Snapshot(context.Background())

	tests := []struct {
		id      string
		visible bool
	}{
		{"plain", true},
		{"hidden-attr", false},
		{"aria", false},
		{"display", false},
		{"visibility", false},
		{"zero", false},
		{"buried", false},
		{"styled-parent", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsVisible(doc.Find("#" + tt.id)); got != tt.visible {
				t.Errorf("IsVisible(#%s) = %v, want %v", tt.id, got, tt.visible)
			}
		})
	}

	if IsVisible(nil) {
		t.Error("nil selection is not visible")
	}
}

func TestFakePageClickReaction(t *testing.T) {
	page := MustFakePage(`<html><body><button id="open">Open</button><div id="panel"></div></body></html>`)
	page.OnClick(MatchID("open"), func(p *FakePage, sel *goquery.Selection) {
		p.AppendHTML("#panel", `<span id="revealed">content</span>`)
	})

	ctx := context.Background()
	doc, _ := page.Snapshot(ctx)
	target := TargetOf(doc.Find("#open"))

	if err := page.Click(ctx, target); err != nil {
		t.Fatalf("Click failed: %v", err)
	}

	doc2, _ := page.Snapshot(ctx)
	if doc2.Find("#revealed").Length() != 1 {
		t.Error("reaction should have mutated the page")
	}
	if !page.ClickedAny("open") {
		t.Errorf("click log = %v", page.Clicks)
	}
}

func TestFakePageClickOnce(t *testing.T) {
	page := MustFakePage(`<html><body><button id="b">B</button><div id="panel"></div></body></html>`)
	page.OnClickOnce(MatchID("b"), func(p *FakePage, sel *goquery.Selection) {
		p.AppendHTML("#panel", `<span class="mark">x</span>`)
	})

	ctx := context.Background()
	doc, _ := page.Snapshot(ctx)
	target := TargetOf(doc.Find("#b"))

	_ = page.Click(ctx, target)
	_ = page.Click(ctx, target)

	doc2, _ := page.Snapshot(ctx)
	if n := doc2.Find(".mark").Length(); n != 1 {
		t.Errorf("once reaction fired %d times", n)
	}
}

func TestFakePageHoverReaction(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody><tr id="row"><td>Japanese</td><td></td><td><button id="edit" hidden>edit</button></td></tr></tbody></table></body></html>`)
	page.OnHover(MatchID("row"), func(p *FakePage, sel *goquery.Selection) {
		p.RemoveAttr("#edit", "hidden")
	})

	ctx := context.Background()
	doc, _ := page.Snapshot(ctx)
	row := doc.Find("#row")
	if row.Length() != 1 {
		t.Fatal("setup: row not found")
	}
	if err := page.Hover(ctx, TargetOf(row)); err != nil {
		t.Fatalf("Hover failed: %v", err)
	}

	doc2, _ := page.Snapshot(ctx)
	if !IsVisible(doc2.Find("#edit")) {
		t.Error("hover should reveal the edit button")
	}
}

func TestFakePageFill(t *testing.T) {
	page := MustFakePage(`<html><body><input type="text" id="title"><textarea id="desc"></textarea></body></html>`)

	ctx := context.Background()
	doc, _ := page.Snapshot(ctx)

	if err := page.Fill(ctx, TargetOf(doc.Find("#title")), "New Title"); err != nil {
		t.Fatalf("Fill input failed: %v", err)
	}
	if err := page.Fill(ctx, TargetOf(doc.Find("#desc")), "New Desc"); err != nil {
		t.Fatalf("Fill textarea failed: %v", err)
	}

	doc2, _ := page.Snapshot(ctx)
	if v, _ := doc2.Find("#title").Attr("value"); v != "New Title" {
		t.Errorf("input value = %q", v)
	}
	if got := doc2.Find("#desc").Text(); got != "New Desc" {
		t.Errorf("textarea text = %q", got)
	}
	if page.Fills["input#title"] != "New Title" {
		t.Errorf("fill log = %v", page.Fills)
	}
}

func TestFakePageSnapshotErr(t *testing.T) {
	page := MustFakePage(`<html><body></body></html>`)
	boom := errors.New("render crashed")
	page.SnapshotErr = boom

	if _, err := page.Snapshot(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want injected error", err)
	}
	// Cleared after one use.
	if _, err := page.Snapshot(context.Background()); err != nil {
		t.Errorf("second snapshot should succeed: %v", err)
	}
}
