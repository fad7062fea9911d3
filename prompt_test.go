package studiolingo

import (
	"strings"
	"testing"
)

func TestBuildTranslationPrompt(t *testing.T) {
	src := Metadata{Title: "My Video", Description: "A video about things. #fun"}
	prompt := BuildTranslationPrompt(src, "English", "Japanese")

	for _, want := range []string{
		"from English to Japanese",
		"TITLE: My Video",
		"A video about things. #fun",
		"TRANSLATED_TITLE:",
		"TRANSLATED_DESCRIPTION:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Empty description leaves the section out entirely.
	noDesc := BuildTranslationPrompt(Metadata{Title: "T"}, "English", "German")
	if strings.Contains(noDesc, "DESCRIPTION:\n") {
		t.Error("prompt should omit empty description section")
	}
}

func TestBuildQuickTranslationPrompt(t *testing.T) {
	src := Metadata{Title: "My Video", Description: "Words"}
	prompt := BuildQuickTranslationPrompt(src, "English", "French")

	if !strings.Contains(prompt, "TRANSLATED_DESC:") {
		t.Error("quick prompt should use the short description marker")
	}
	if strings.Contains(prompt, "TRANSLATED_DESCRIPTION:") {
		t.Error("quick prompt should not use the long description marker")
	}
}

func TestParseTranslationResult(t *testing.T) {
	tests := []struct {
		name      string
		result    string
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "long markers",
			result:    "TRANSLATED_TITLE: Mi Video\nTRANSLATED_DESCRIPTION: Un video sobre cosas",
			wantTitle: "Mi Video",
			wantDesc:  "Un video sobre cosas",
		},
		{
			name:      "short marker",
			result:    "TRANSLATED_TITLE: Ma Vidéo\nTRANSLATED_DESC: Une vidéo",
			wantTitle: "Ma Vidéo",
			wantDesc:  "Une vidéo",
		},
		{
			name:      "title only",
			result:    "TRANSLATED_TITLE: Just a title",
			wantTitle: "Just a title",
			wantDesc:  "",
		},
		{
			name:      "no markers at all",
			result:    "Sorry, I cannot help with that.",
			wantTitle: "",
			wantDesc:  "",
		},
		{
			name:      "multiline description",
			result:    "TRANSLATED_TITLE: T\nTRANSLATED_DESCRIPTION: line one\nline two\n\nline four",
			wantTitle: "T",
			wantDesc:  "line one\nline two\n\nline four",
		},
		{
			name:      "preamble before markers",
			result:    "Here is the translation:\n\nTRANSLATED_TITLE: T\nTRANSLATED_DESCRIPTION: D",
			wantTitle: "T",
			wantDesc:  "D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTranslationResult(tt.result)
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
		})
	}
}

func TestParseTranslationResultEnforcesTitleLimit(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := ParseTranslationResult("TRANSLATED_TITLE: " + long + "\nTRANSLATED_DESCRIPTION: D")
	if len([]rune(got.Title)) > MaxTitleLength {
		t.Errorf("title not truncated: %d runes", len([]rune(got.Title)))
	}
	if !strings.HasSuffix(got.Title, "...") {
		t.Errorf("truncated title should end with ellipsis: %q", got.Title)
	}
}

func TestMetadataIsEmpty(t *testing.T) {
	if !(Metadata{}).IsEmpty() {
		t.Error("zero metadata should be empty")
	}
	if !(Metadata{Title: "  ", Description: "\n"}).IsEmpty() {
		t.Error("whitespace-only metadata should be empty")
	}
	if (Metadata{Title: "x"}).IsEmpty() {
		t.Error("metadata with a title is not empty")
	}
}
