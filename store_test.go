package studiolingo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "subscription.yaml"))
	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(state.Subscription) != len(DefaultSubscription) {
		t.Errorf("Subscription = %v", state.Subscription)
	}
	if len(state.Custom) != 0 || !state.TrialStartedAt.IsZero() {
		t.Error("fresh state should carry no customs or trial anchor")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studiolingo", "subscription.yaml")
	store := NewFileStore(path)

	started := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	in := &SubscriptionState{
		Subscription: []string{"id", "en", "ja", "tlh"},
		Custom: []LanguageEntry{
			{Code: "tlh", DisplayName: "Klingon", Flag: "🏳️"},
		},
		TrialStartedAt: started,
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.Join(out.Subscription, ",") != "id,en,ja,tlh" {
		t.Errorf("Subscription = %v", out.Subscription)
	}
	if len(out.Custom) != 1 || out.Custom[0].DisplayName != "Klingon" {
		t.Errorf("Custom = %+v", out.Custom)
	}
	if !out.TrialStartedAt.Equal(started) {
		t.Errorf("TrialStartedAt = %v", out.TrialStartedAt)
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscription.yaml")
	store := NewFileStore(path)

	if err := store.Save(&SubscriptionState{Subscription: []string{"id", "en", "ja"}}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := store.Save(&SubscriptionState{Subscription: []string{"id", "en", "de"}}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.Join(out.Subscription, ",") != "id,en,de" {
		t.Errorf("Subscription = %v", out.Subscription)
	}

	// No temp file debris left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".subscription-") {
			t.Errorf("leftover temp file %q", e.Name())
		}
	}
}

func TestFileStoreLoadEmptySubscription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscription.yaml")
	if err := os.WriteFile(path, []byte("subscription: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	state, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(state.Subscription) != len(DefaultSubscription) {
		t.Errorf("empty subscription should fall back to defaults, got %v", state.Subscription)
	}
}

func TestFileStoreLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscription.yaml")
	if err := os.WriteFile(path, []byte("subscription: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSubscriptionStateApplyTo(t *testing.T) {
	// A hand-edited file may scatter the protected codes; ApplyTo repairs
	// ordering and registers customs so their entries resolve.
	state := &SubscriptionState{
		Subscription: []string{"ja", "en", "tlh", "id"},
		Custom: []LanguageEntry{
			{Code: "tlh", DisplayName: "Klingon", Flag: ""},
		},
	}
	cat := NewCatalog()
	sub := state.ApplyTo(cat)

	if sub[0] != "id" || sub[1] != "en" {
		t.Errorf("protected codes must lead: %v", sub)
	}
	entry := cat.Get("tlh")
	if entry.DisplayName != "Klingon" {
		t.Errorf("custom not registered: %+v", entry)
	}
	if entry.Flag != CustomFlag {
		t.Errorf("empty flag should default to %q, got %q", CustomFlag, entry.Flag)
	}
}
