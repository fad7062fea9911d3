package studiolingo

import (
	"context"
	"strings"

	"github.com/studiolingo/studiolingo/gateway"
)

// Titles are short; a tighter budget than the description flows is enough.
const titleSuggestionTokens = 1500

// Assistant generates fresh metadata through the AI gateway: title
// suggestions, descriptions, and tags seeded from whatever the video
// already has. It complements the Translator, which only carries existing
// text across languages.
type Assistant struct {
	generator gateway.Generator
	catalog   *Catalog
	maxTokens int
}

// AssistantOption is a functional option for configuring the Assistant.
type AssistantOption func(*Assistant)

// WithAssistantCatalog sets the catalog used to resolve language names for
// prompts.
func WithAssistantCatalog(c *Catalog) AssistantOption {
	return func(a *Assistant) {
		a.catalog = c
	}
}

// WithAssistantMaxTokens caps the description and tag generation length
// (default 2000).
func WithAssistantMaxTokens(n int) AssistantOption {
	return func(a *Assistant) {
		a.maxTokens = n
	}
}

// NewAssistant creates an Assistant over the given generator.
func NewAssistant(gen gateway.Generator, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		generator: gen,
		catalog:   NewCatalog(),
		maxTokens: 2000,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SuggestTitles returns up to TitleSuggestionCount alternative titles for
// src. With opts.Language empty the suggestions stay in the source
// content's own language; a catalog code pins them to that language
// instead. Titles are length-enforced on the way out.
func (a *Assistant) SuggestTitles(ctx context.Context, src Metadata, opts TitleOptions) ([]string, error) {
	var targetName string
	if opts.Language != "" && opts.Language != "auto" {
		targetName = a.catalog.DisplayName(opts.Language)
	}

	prompt := BuildTitleSuggestionsPrompt(src, opts, targetName)
	result, err := a.generator.Generate(ctx, prompt, titleSuggestionTokens)
	if err != nil {
		return nil, err
	}

	titles := ParseTitleSuggestions(result)
	if len(titles) == 0 {
		return nil, &gateway.Error{Kind: gateway.KindNoResponse, Message: "no numbered suggestions in response"}
	}
	for i, t := range titles {
		titles[i] = TruncateTitle(t)
	}
	return titles, nil
}

// GenerateDescription writes a description for src in the same language as
// its title.
func (a *Assistant) GenerateDescription(ctx context.Context, src Metadata, opts DescriptionOptions) (string, error) {
	prompt := BuildDescriptionPrompt(src, opts)
	result, err := a.generator.Generate(ctx, prompt, a.maxTokens)
	if err != nil {
		return "", err
	}

	desc := strings.TrimSpace(result)
	if desc == "" {
		return "", &gateway.Error{Kind: gateway.KindNoResponse, Message: "empty description in response"}
	}
	return desc, nil
}

// GenerateTags returns search tags for src. The source language is detected
// from the existing text so the mixed and local modes can name it in the
// prompt. At most opts.Count tags come back even when the model overshoots.
func (a *Assistant) GenerateTags(ctx context.Context, src Metadata, opts TagOptions) ([]string, error) {
	count := opts.Count
	if count <= 0 {
		count = DefaultTagCount
	}

	localCode := DetectFromText(src.Title + " " + src.Description)
	localName := a.catalog.DisplayName(localCode)

	prompt := BuildTagsPrompt(src, opts, localName)
	result, err := a.generator.Generate(ctx, prompt, a.maxTokens)
	if err != nil {
		return nil, err
	}

	tags := ParseTags(result)
	if len(tags) == 0 {
		return nil, &gateway.Error{Kind: gateway.KindNoResponse, Message: "no tags in response"}
	}
	if len(tags) > count {
		tags = tags[:count]
	}
	return tags, nil
}
