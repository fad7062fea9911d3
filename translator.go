package studiolingo

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/studiolingo/studiolingo/gateway"
)

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Translator translates one video's metadata through the AI gateway, with
// optional caching keyed on the source text hash and language pair.
type Translator struct {
	generator  gateway.Generator
	catalog    *Catalog
	cache      TranslationCache
	sourceLang string
	maxTokens  int
	quick      bool
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithSourceLang sets the source language code (default "en").
func WithSourceLang(code string) TranslatorOption {
	return func(t *Translator) {
		t.sourceLang = code
	}
}

// WithMaxTokens caps the generation length (default 2000).
func WithMaxTokens(n int) TranslatorOption {
	return func(t *Translator) {
		t.maxTokens = n
	}
}

// WithCatalog sets the catalog used to resolve display names for prompts.
func WithCatalog(c *Catalog) TranslatorOption {
	return func(t *Translator) {
		t.catalog = c
	}
}

// WithQuickFlow switches to the single-field prompt framing used by the
// manual translate dialog.
func WithQuickFlow() TranslatorOption {
	return func(t *Translator) {
		t.quick = true
	}
}

// NewTranslator creates a Translator over the given generator.
func NewTranslator(gen gateway.Generator, opts ...TranslatorOption) *Translator {
	t := &Translator{
		generator:  gen,
		catalog:    NewCatalog(),
		sourceLang: "en",
		maxTokens:  2000,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate translates src into targetLang. The target may be a catalog code
// or a raw UI label; labels go into the prompt as-is since the model can
// interpret natural-language names. Cache hits bypass the gateway entirely.
func (t *Translator) Translate(ctx context.Context, src Metadata, targetLang string) (Metadata, error) {
	if src.IsEmpty() {
		return Metadata{}, nil
	}
	if targetLang == t.sourceLang {
		return Metadata{Title: TruncateTitle(src.Title), Description: src.Description}, nil
	}

	key := t.cacheKey(src, targetLang)
	if t.cache != nil {
		if cached, ok := t.cache.Get(key); ok {
			var out Metadata
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
			// Corrupt entry: fall through and overwrite it.
		}
	}

	srcName := t.catalog.DisplayName(t.sourceLang)
	dstName := t.displayNameForTarget(targetLang)

	var prompt string
	if t.quick {
		prompt = BuildQuickTranslationPrompt(src, srcName, dstName)
	} else {
		prompt = BuildTranslationPrompt(src, srcName, dstName)
	}

	result, err := t.generator.Generate(ctx, prompt, t.maxTokens)
	if err != nil {
		return Metadata{}, err
	}

	out := ParseTranslationResult(result)

	if t.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			_ = t.cache.Set(key, string(data)) // cache failures never fail the translation
		}
	}
	return out, nil
}

// SourceLang returns the configured source language code.
func (t *Translator) SourceLang() string {
	return t.sourceLang
}

func (t *Translator) cacheKey(src Metadata, targetLang string) string {
	hash := HashText(src.Title + "\n" + src.Description)
	return CacheKey(hash, t.sourceLang, targetLang)
}

// displayNameForTarget resolves a code through the catalog but passes
// unrecognized labels through untouched.
func (t *Translator) displayNameForTarget(target string) string {
	if t.catalog.Has(target) {
		return t.catalog.DisplayName(target)
	}
	return strings.TrimSpace(target)
}
