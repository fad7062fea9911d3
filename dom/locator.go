package dom

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// InjectedTranslateButtonID is the id of the translate control this engine's
// embedding UI injects into the metadata dialog, when it injects one. The
// locator prefers it over the host page's native trigger.
const InjectedTranslateButtonID = "studiolingo-translate-button"

// Locator finds host-page controls by running layered strategies over fresh
// snapshots. Every lookup polls until its timeout; a nil, nil return means
// the control is genuinely absent, which callers treat as a normal outcome.
type Locator struct {
	page         Page
	pollInterval time.Duration
}

// NewLocator returns a Locator polling page at the given interval. A zero
// interval defaults to 100ms.
func NewLocator(page Page, pollInterval time.Duration) *Locator {
	if pollInterval <= 0 {
		pollInterval = 100 * time.Millisecond
	}
	return &Locator{page: page, pollInterval: pollInterval}
}

// find polls snapshots until strategy returns a match or timeout elapses.
// The strategy receives a fresh document each attempt and must not retain
// it. Only context cancellation and snapshot failures are errors.
func (l *Locator) find(ctx context.Context, timeout time.Duration, strategy func(doc *goquery.Document) *Element) (*Element, error) {
	deadline := time.Now().Add(timeout)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := l.page.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		if el := strategy(doc); el != nil {
			return el, nil
		}
		if !time.Now().Add(l.pollInterval).Before(deadline) {
			return nil, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.pollInterval):
		}
	}
}

// firstVisible returns the first visible element in sel, or nil.
func firstVisible(sel *goquery.Selection) *Element {
	var out *Element
	sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if IsVisible(s) {
			out = elementFor(s)
			return false
		}
		return true
	})
	return out
}

// firstVisibleWithText returns the first visible element in sel whose text
// matches any of labels.
func firstVisibleWithText(sel *goquery.Selection, labels []string) *Element {
	var out *Element
	sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if IsVisible(s) && textMatchesAnyLabel(strings.TrimSpace(s.Text()), labels) {
			out = elementFor(s)
			return false
		}
		return true
	})
	return out
}

// AddLanguageControl locates the control that opens the language picker.
// Strategies, in order: the stable container id, known custom-element
// buttons by localized label, then any clickable by localized label.
func (l *Locator) AddLanguageControl(ctx context.Context, timeout time.Duration) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		if el := firstVisible(doc.Find("#add-translations-button button, #add-translations-button")); el != nil {
			return el
		}
		if el := firstVisibleWithText(doc.Find("ytcp-button, tp-yt-paper-button, button"), addLanguageLabels); el != nil {
			return el
		}
		return firstVisibleWithText(doc.Find(`[role="button"]`), addLanguageLabels)
	})
}

// PickerEntry locates the picker row for a language, matching its text
// against the given display-name variations. Matching is exact-first, then
// substring, so "Spanish (Latin America)" does not shadow "Spanish".
func (l *Locator) PickerEntry(ctx context.Context, timeout time.Duration, variations []string) (*Element, error) {
	selectors := []string{
		"ytcp-text-menu tp-yt-paper-item",
		"tp-yt-paper-listbox tp-yt-paper-item",
		`[role="option"]`,
		`[role="menuitem"]`,
		"tp-yt-paper-item",
	}
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		for _, sel := range selectors {
			items := doc.Find(sel)
			if el := pickerMatch(items, variations, true); el != nil {
				return el
			}
			if el := pickerMatch(items, variations, false); el != nil {
				return el
			}
		}
		return nil
	})
}

func pickerMatch(items *goquery.Selection, variations []string, exact bool) *Element {
	var out *Element
	items.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if !IsVisible(s) {
			return true
		}
		text := strings.TrimSpace(s.Text())
		for _, v := range variations {
			if exact && strings.EqualFold(text, v) || !exact && containsFold(text, v) {
				out = elementFor(s)
				return false
			}
		}
		return true
	})
	return out
}

// languageRow finds the translation-table row for a language within doc.
// Layered: first-cell text against variations, then any cell mentioning the
// raw code, then the newest row that still carries an add-style icon, then
// plainly the last row. The page appends new languages at the bottom, which
// is what the positional fallbacks lean on.
func languageRow(doc *goquery.Document, code string, variations []string) *Element {
	rows := doc.Find("ytgn-video-translation-row, table tr[data-language], tr.translation-row")
	if rows.Length() == 0 {
		rows = doc.Find("tr").FilterFunction(func(i int, s *goquery.Selection) bool {
			return s.Find("td").Length() >= 3
		})
	}
	if rows.Length() == 0 {
		return nil
	}

	var byLabel *Element
	rows.EachWithBreak(func(i int, s *goquery.Selection) bool {
		first := s.Find("td").First()
		text := strings.TrimSpace(first.Text())
		for _, v := range variations {
			if strings.EqualFold(text, v) || containsFold(text, v) {
				byLabel = elementFor(s)
				return false
			}
		}
		return true
	})
	if byLabel != nil {
		return byLabel
	}

	var byCode *Element
	rows.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if attr, ok := s.Attr("data-language"); ok && strings.EqualFold(attr, code) {
			byCode = elementFor(s)
			return false
		}
		if containsFold(s.Text(), "("+code+")") {
			byCode = elementFor(s)
			return false
		}
		return true
	})
	if byCode != nil {
		return byCode
	}

	var withIcon *Element
	rows.Each(func(i int, s *goquery.Selection) {
		if s.Find(`[id*="add"], [class*="add"], ytcp-icon-button`).Length() > 0 {
			withIcon = elementFor(s)
		}
	})
	if withIcon != nil {
		return withIcon
	}
	return elementFor(rows.Last())
}

// LanguageRow locates the translation-table row for a language.
func (l *Locator) LanguageRow(ctx context.Context, timeout time.Duration, code string, variations []string) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		return languageRow(doc, code, variations)
	})
}

// EditControl locates the metadata edit icon inside a language's row. The
// icon is often rendered only after hovering the row, so callers hover
// first (HoverTargets) and then call this. The row is re-found in every
// snapshot rather than carried over, since hovering re-renders it.
//
// Strategies, in order: the stable #metadata-add id, icon buttons whose id
// or aria-label mentions add/edit/metadata, any clickable in the metadata
// column (third cell), then any icon-sized clickable in the row.
func (l *Locator) EditControl(ctx context.Context, timeout time.Duration, code string, variations []string) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		row := languageRow(doc, code, variations)
		if row == nil {
			return nil
		}
		if el := firstVisible(row.Sel.Find("#metadata-add")); el != nil {
			return el
		}
		var hinted *Element
		row.Sel.Find("ytcp-icon-button, button, [role=\"button\"]").EachWithBreak(func(i int, s *goquery.Selection) bool {
			if !IsVisible(s) {
				return true
			}
			id, _ := s.Attr("id")
			aria, _ := s.Attr("aria-label")
			hint := strings.ToLower(id + " " + aria)
			if strings.Contains(hint, "add") || strings.Contains(hint, "edit") || strings.Contains(hint, "metadata") {
				hinted = elementFor(s)
				return false
			}
			return true
		})
		if hinted != nil {
			return hinted
		}
		cells := row.Sel.Find("td")
		if cells.Length() >= 3 {
			third := cells.Eq(2)
			if el := firstVisible(third.Find("ytcp-icon-button, button, [role=\"button\"], a")); el != nil {
				return el
			}
		}
		var icon *Element
		row.Sel.Find("*").EachWithBreak(func(i int, s *goquery.Selection) bool {
			if IsVisible(s) && isIconSized(s) {
				icon = elementFor(s)
				return false
			}
			return true
		})
		return icon
	})
}

// HoverTargets returns the hover sequence that reveals a row's edit icon:
// the row itself, its metadata column, and any cell hinted as metadata.
// Targets come from one snapshot and should be hovered immediately.
func (l *Locator) HoverTargets(ctx context.Context, code string, variations []string) ([]Target, error) {
	doc, err := l.page.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	row := languageRow(doc, code, variations)
	if row == nil {
		return nil, nil
	}
	targets := []Target{row.Target}
	cells := row.Sel.Find("td")
	if cells.Length() >= 3 {
		targets = append(targets, TargetOf(cells.Eq(2)))
	}
	cells.Each(func(i int, s *goquery.Selection) {
		if class, _ := s.Attr("class"); containsFold(class, "metadata") {
			targets = append(targets, TargetOf(s))
		}
	})
	return targets, nil
}

// dialogScope returns the open metadata dialog, or the whole document when
// no dialog wrapper is recognizable.
func dialogScope(doc *goquery.Document) *goquery.Selection {
	for _, sel := range []string{"tp-yt-paper-dialog", "ytcp-dialog", `[role="dialog"]`} {
		if d := doc.Find(sel); d.Length() > 0 {
			visible := d.FilterFunction(func(i int, s *goquery.Selection) bool { return IsVisible(s) })
			if visible.Length() > 0 {
				return visible.First()
			}
		}
	}
	return doc.Selection
}

// TranslateTrigger locates a translate action in the open metadata dialog.
// The injected control wins when present; otherwise the host page's native
// trigger is matched by localized label or marker emoji.
func (l *Locator) TranslateTrigger(ctx context.Context, timeout time.Duration) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		scope := dialogScope(doc)
		if el := firstVisible(scope.Find("#" + InjectedTranslateButtonID)); el != nil {
			return el
		}
		clickables := scope.Find("ytcp-button, tp-yt-paper-button, button, [role=\"button\"]")
		if el := firstVisibleWithText(clickables, translateLabels); el != nil {
			return el
		}
		return firstVisibleWithText(clickables, markerEmojis)
	})
}

// DialogTitleField locates the title input in the open dialog: the first
// visible single-line text box.
func (l *Locator) DialogTitleField(ctx context.Context, timeout time.Duration) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		scope := dialogScope(doc)
		if el := firstVisible(scope.Find(`#textbox[aria-label*="title" i], input[aria-label*="title" i]`)); el != nil {
			return el
		}
		return firstVisible(scope.Find(`input[type="text"], #textbox, [contenteditable="true"]`))
	})
}

// DialogDescriptionField locates the description input in the open dialog:
// the first visible multi-line box, or the second editable region when the
// dialog renders both fields as contenteditable.
func (l *Locator) DialogDescriptionField(ctx context.Context, timeout time.Duration) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		scope := dialogScope(doc)
		if el := firstVisible(scope.Find(`textarea, [aria-label*="description" i]`)); el != nil {
			return el
		}
		editables := scope.Find(`[contenteditable="true"], #textbox`)
		if editables.Length() >= 2 {
			return firstVisible(editables.Slice(1, editables.Length()))
		}
		return nil
	})
}

// PublishControl locates the control that commits the translated metadata.
func (l *Locator) PublishControl(ctx context.Context, timeout time.Duration) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		if el := firstVisible(doc.Find("#publish-button button, #publish-button, #save-button")); el != nil {
			return el
		}
		scope := dialogScope(doc)
		clickables := scope.Find("ytcp-button, tp-yt-paper-button, button, [role=\"button\"]")
		if el := firstVisibleWithText(clickables, publishLabels); el != nil {
			return el
		}
		return firstVisibleWithText(doc.Find("ytgn-metadata-editor button, ytgn-metadata-editor ytcp-button"), publishLabels)
	})
}

// CompletionBanner locates the confirmation the host page shows once a
// translation has been applied, by localized phrase or by alert-styled
// containers mentioning translation success.
func (l *Locator) CompletionBanner(ctx context.Context, timeout time.Duration) (*Element, error) {
	return l.find(ctx, timeout, func(doc *goquery.Document) *Element {
		var out *Element
		doc.Find(`[role="alert"], [class*="success"], [class*="complete"], ytcp-notification, tp-yt-paper-toast`).EachWithBreak(func(i int, s *goquery.Selection) bool {
			if !IsVisible(s) {
				return true
			}
			text := strings.ToLower(strings.TrimSpace(s.Text()))
			for _, p := range completionPhrases {
				if strings.Contains(text, p) {
					out = elementFor(s)
					return false
				}
			}
			if strings.Contains(text, "translation") && (strings.Contains(text, "complete") || strings.Contains(text, "success") || strings.Contains(text, "saved")) {
				out = elementFor(s)
				return false
			}
			return true
		})
		return out
	})
}
