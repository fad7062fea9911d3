package dom

import (
	"context"
	"testing"
	"time"
)

func newTestLocator(page *FakePage) *Locator {
	return NewLocator(page, time.Millisecond)
}

const testTimeout = 20 * time.Millisecond

func TestAddLanguageControlByID(t *testing.T) {
	page := MustFakePage(`<html><body>
		<div id="add-translations-button"><button>Idioma</button></div>
	</body></html>`)

	el, err := newTestLocator(page).AddLanguageControl(context.Background(), testTimeout)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if el == nil {
		t.Fatal("control not found")
	}
	if el.Text() != "Idioma" {
		t.Errorf("Text = %q", el.Text())
	}
}

func TestAddLanguageControlByLocalizedLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"english", "Add language"},
		{"german", "Sprache hinzufügen"},
		{"japanese", "言語を追加"},
		{"indonesian", "Tambahkan bahasa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := MustFakePage(`<html><body><ytcp-button>` + tt.label + `</ytcp-button></body></html>`)
			el, err := newTestLocator(page).AddLanguageControl(context.Background(), testTimeout)
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			if el == nil {
				t.Fatalf("label %q not matched", tt.label)
			}
		})
	}
}

func TestAddLanguageControlSkipsHidden(t *testing.T) {
	page := MustFakePage(`<html><body>
		<button hidden>Add language</button>
		<button id="live">Add language</button>
	</body></html>`)

	el, err := newTestLocator(page).AddLanguageControl(context.Background(), testTimeout)
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if id, _ := el.Sel.Attr("id"); id != "live" {
		t.Errorf("matched hidden control instead of #live")
	}
}

func TestAddLanguageControlNotFound(t *testing.T) {
	page := MustFakePage(`<html><body><button>Delete video</button></body></html>`)

	el, err := newTestLocator(page).AddLanguageControl(context.Background(), testTimeout)
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if el != nil {
		t.Errorf("unexpected match: %q", el.Text())
	}
}

func TestLocatorPollsForLateElements(t *testing.T) {
	page := MustFakePage(`<html><body><div id="root"></div></body></html>`)

	go func() {
		time.Sleep(5 * time.Millisecond)
		page.AppendHTML("#root", `<div id="add-translations-button"><button>Add</button></div>`)
	}()

	el, err := newTestLocator(page).AddLanguageControl(context.Background(), 200*time.Millisecond)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if el == nil {
		t.Fatal("polling should have picked up the late element")
	}
}

func TestLocatorCancelledContext(t *testing.T) {
	page := MustFakePage(`<html><body></body></html>`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestLocator(page).AddLanguageControl(ctx, time.Second); err == nil {
		t.Error("cancellation should surface as an error")
	}
}

func TestPickerEntryPrefersExactMatch(t *testing.T) {
	page := MustFakePage(`<html><body><ytcp-text-menu>
		<tp-yt-paper-item>Spanish (Latin America)</tp-yt-paper-item>
		<tp-yt-paper-item>Spanish</tp-yt-paper-item>
	</ytcp-text-menu></body></html>`)

	el, err := newTestLocator(page).PickerEntry(context.Background(), testTimeout, []string{"Spanish"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if el.Text() != "Spanish" {
		t.Errorf("matched %q, want the exact entry", el.Text())
	}
}

func TestPickerEntrySubstringFallback(t *testing.T) {
	page := MustFakePage(`<html><body><tp-yt-paper-listbox>
		<tp-yt-paper-item>日本語 (Japanese)</tp-yt-paper-item>
	</tp-yt-paper-listbox></body></html>`)

	el, err := newTestLocator(page).PickerEntry(context.Background(), testTimeout, []string{"Japanese", "日本語"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
}

func TestLanguageRowByFirstCell(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody>
		<tr class="translation-row"><td>German</td><td>Published</td><td></td></tr>
		<tr class="translation-row"><td>Japanese</td><td>Draft</td><td></td></tr>
	</tbody></table></body></html>`)

	el, err := newTestLocator(page).LanguageRow(context.Background(), testTimeout, "ja", []string{"Japanese"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if got := el.Sel.Find("td").First().Text(); got != "Japanese" {
		t.Errorf("matched row %q", got)
	}
}

func TestLanguageRowByCodeAttr(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody>
		<tr data-language="de"><td>Deutsch</td><td></td><td></td></tr>
		<tr data-language="ja"><td>日本語</td><td></td><td></td></tr>
	</tbody></table></body></html>`)

	// The label "Nihongo" matches nothing, but the code attribute does.
	el, err := newTestLocator(page).LanguageRow(context.Background(), testTimeout, "ja", []string{"Nihongo"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if attr, _ := el.Sel.Attr("data-language"); attr != "ja" {
		t.Errorf("matched row %q", attr)
	}
}

func TestLanguageRowFallsBackToLastRow(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody>
		<tr class="translation-row"><td>Deutsch</td><td></td><td></td></tr>
		<tr class="translation-row"><td>Latest</td><td></td><td></td></tr>
	</tbody></table></body></html>`)

	// Nothing matches; the newest (last) row is the best guess because the
	// page appends freshly added languages at the bottom.
	el, err := newTestLocator(page).LanguageRow(context.Background(), testTimeout, "xx", []string{"Nothing"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if got := el.Sel.Find("td").First().Text(); got != "Latest" {
		t.Errorf("matched row %q", got)
	}
}

func TestEditControlByStableID(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody>
		<tr class="translation-row"><td>Japanese</td><td></td><td><button id="metadata-add">+</button></td></tr>
	</tbody></table></body></html>`)

	el, err := newTestLocator(page).EditControl(context.Background(), testTimeout, "ja", []string{"Japanese"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if id, _ := el.Sel.Attr("id"); id != "metadata-add" {
		t.Errorf("matched %q", id)
	}
}

func TestEditControlByAriaHint(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody>
		<tr class="translation-row"><td>Japanese</td><td></td><td><button aria-label="Edit metadata">✎</button></td></tr>
	</tbody></table></body></html>`)

	el, err := newTestLocator(page).EditControl(context.Background(), testTimeout, "ja", []string{"Japanese"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
}

func TestEditControlThirdCellFallback(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody>
		<tr class="translation-row"><td>Japanese</td><td><button>Subtitles</button></td><td><a href="#">open</a></td></tr>
	</tbody></table></body></html>`)

	el, err := newTestLocator(page).EditControl(context.Background(), testTimeout, "ja", []string{"Japanese"})
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if el.Text() != "open" {
		t.Errorf("matched %q, want the metadata-column clickable", el.Text())
	}
}

func TestTranslateTriggerPrefersInjectedButton(t *testing.T) {
	page := MustFakePage(`<html><body><tp-yt-paper-dialog>
		<button>Translate</button>
		<button id="` + InjectedTranslateButtonID + `">✨ Translate</button>
	</tp-yt-paper-dialog></body></html>`)

	el, err := newTestLocator(page).TranslateTrigger(context.Background(), testTimeout)
	if err != nil || el == nil {
		t.Fatalf("lookup = %v, %v", el, err)
	}
	if id, _ := el.Sel.Attr("id"); id != InjectedTranslateButtonID {
		t.Errorf("matched %q, want the injected control", el.Text())
	}
}

func TestTranslateTriggerByLabelAndEmoji(t *testing.T) {
	byLabel := MustFakePage(`<html><body><div role="dialog"><ytcp-button>Übersetzen</ytcp-button></div></body></html>`)
	el, err := newTestLocator(byLabel).TranslateTrigger(context.Background(), testTimeout)
	if err != nil || el == nil {
		t.Fatalf("label lookup = %v, %v", el, err)
	}

	byEmoji := MustFakePage(`<html><body><div role="dialog"><button>✨ Magie</button></div></body></html>`)
	el, err = newTestLocator(byEmoji).TranslateTrigger(context.Background(), testTimeout)
	if err != nil || el == nil {
		t.Fatalf("emoji lookup = %v, %v", el, err)
	}
}

func TestDialogFields(t *testing.T) {
	page := MustFakePage(`<html><body><tp-yt-paper-dialog>
		<input type="text" aria-label="Title (required)">
		<textarea aria-label="Description"></textarea>
	</tp-yt-paper-dialog></body></html>`)
	loc := newTestLocator(page)

	title, err := loc.DialogTitleField(context.Background(), testTimeout)
	if err != nil || title == nil {
		t.Fatalf("title lookup = %v, %v", title, err)
	}
	if name := title.Sel.Get(0).Data; name != "input" {
		t.Errorf("title field is %q", name)
	}

	desc, err := loc.DialogDescriptionField(context.Background(), testTimeout)
	if err != nil || desc == nil {
		t.Fatalf("description lookup = %v, %v", desc, err)
	}
	if name := desc.Sel.Get(0).Data; name != "textarea" {
		t.Errorf("description field is %q", name)
	}
}

func TestPublishControl(t *testing.T) {
	byID := MustFakePage(`<html><body><div id="publish-button"><button>Publicar</button></div></body></html>`)
	el, err := newTestLocator(byID).PublishControl(context.Background(), testTimeout)
	if err != nil || el == nil {
		t.Fatalf("id lookup = %v, %v", el, err)
	}

	byLabel := MustFakePage(`<html><body><div role="dialog"><ytcp-button>Guardar</ytcp-button></div></body></html>`)
	el, err = newTestLocator(byLabel).PublishControl(context.Background(), testTimeout)
	if err != nil || el == nil {
		t.Fatalf("label lookup = %v, %v", el, err)
	}
}

func TestCompletionBanner(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		found  bool
	}{
		{
			"localized phrase",
			`<div role="alert">Übersetzung abgeschlossen</div>`,
			true,
		},
		{
			"generic translation success",
			`<div class="status-complete">Translation was saved successfully</div>`,
			true,
		},
		{
			"unrelated alert",
			`<div role="alert">Upload failed</div>`,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := MustFakePage(`<html><body>` + tt.markup + `</body></html>`)
			el, err := newTestLocator(page).CompletionBanner(context.Background(), testTimeout)
			if err != nil {
				t.Fatalf("lookup failed: %v", err)
			}
			if (el != nil) != tt.found {
				t.Errorf("found = %v, want %v", el != nil, tt.found)
			}
		})
	}
}

func TestHoverTargets(t *testing.T) {
	page := MustFakePage(`<html><body><table><tbody>
		<tr class="translation-row"><td>Japanese</td><td></td><td class="metadata-cell"></td></tr>
	</tbody></table></body></html>`)

	targets, err := newTestLocator(page).HoverTargets(context.Background(), "ja", []string{"Japanese"})
	if err != nil {
		t.Fatalf("HoverTargets failed: %v", err)
	}
	// Row, third cell, and the metadata-classed cell.
	if len(targets) != 3 {
		t.Errorf("targets = %d, want 3", len(targets))
	}
}
