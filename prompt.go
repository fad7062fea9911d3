package studiolingo

import (
	"fmt"
	"regexp"
	"strings"
)

// Metadata is one video's translatable text.
type Metadata struct {
	Title       string
	Description string
}

// IsEmpty reports whether there is nothing to translate.
func (m Metadata) IsEmpty() bool {
	return strings.TrimSpace(m.Title) == "" && strings.TrimSpace(m.Description) == ""
}

// Response markers the model is instructed to emit. The parser keys on
// these literally; TRANSLATED_DESC is the short form used by the
// single-field flow.
const (
	markerTitle     = "TRANSLATED_TITLE:"
	markerDesc      = "TRANSLATED_DESCRIPTION:"
	markerDescShort = "TRANSLATED_DESC:"
)

var (
	titleLongRe  = regexp.MustCompile(`(?s)TRANSLATED_TITLE:\s*(.+?)(?:TRANSLATED_DESCRIPTION:|$)`)
	titleShortRe = regexp.MustCompile(`(?s)TRANSLATED_TITLE:\s*(.+?)(?:TRANSLATED_DESC:|$)`)
	descLongRe   = regexp.MustCompile(`(?s)TRANSLATED_DESCRIPTION:\s*(.+)`)
	descShortRe  = regexp.MustCompile(`(?s)TRANSLATED_DESC:\s*(.+)`)
)

// BuildTranslationPrompt frames a metadata translation request for the
// pipeline flow. srcName and dstName are human-readable language names;
// natural-language names work as well as codes.
func BuildTranslationPrompt(src Metadata, srcName, dstName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a professional translator. Translate this video content from %s to %s.\n\n", srcName, dstName)
	fmt.Fprintf(&b, "CRITICAL: Output MUST be in %s language, not any other language.\n\n", dstName)
	fmt.Fprintf(&b, "SOURCE (%s):\n", srcName)
	if strings.TrimSpace(src.Title) != "" {
		fmt.Fprintf(&b, "TITLE: %s\n", src.Title)
	}
	if strings.TrimSpace(src.Description) != "" {
		fmt.Fprintf(&b, "\nDESCRIPTION:\n%s\n", src.Description)
	}
	fmt.Fprintf(&b, `
RULES:
1. Translate to %s ONLY
2. Keep emojis exactly as they are
3. Translate hashtag words but keep the # symbol
4. Natural fluent translation, not word-by-word
5. Keep line breaks and formatting
6. TITLE MUST BE %d CHARACTERS OR LESS (platform limit); shorten while keeping the meaning if needed

OUTPUT FORMAT:
%s [%s translation - MAX %d chars]
%s [%s translation]`,
		dstName, MaxTitleLength,
		markerTitle, dstName, MaxTitleLength,
		markerDesc, dstName)

	return b.String()
}

// BuildQuickTranslationPrompt frames the single-field translate flow, which
// uses the short description marker.
func BuildQuickTranslationPrompt(src Metadata, srcName, dstName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Translate this video content from %s to %s.\n\n", srcName, dstName)
	if strings.TrimSpace(src.Title) != "" {
		fmt.Fprintf(&b, "TITLE: %s\n", src.Title)
	}
	if strings.TrimSpace(src.Description) != "" {
		fmt.Fprintf(&b, "DESCRIPTION:\n%s\n", src.Description)
	}
	fmt.Fprintf(&b, `
Rules:
- Keep same tone and style
- Preserve all emojis
- Translate hashtag words but keep the # symbol
- Keep line breaks and formatting
- Natural fluent translation
- TITLE MUST BE %d CHARACTERS OR LESS (platform limit)

Output format:
%s [title here - MAX %d chars]
%s [description here]`,
		MaxTitleLength, markerTitle, MaxTitleLength, markerDescShort)

	return b.String()
}

// ParseTranslationResult extracts the translated title and description from
// a model response. Each marker captures everything up to the next marker or
// end of text. A missing marker yields an empty field, never an error; model
// responses are too loose to treat format drift as fatal. The title is
// length-enforced on the way out.
func ParseTranslationResult(result string) Metadata {
	var out Metadata

	if m := descLongRe.FindStringSubmatch(result); m != nil {
		out.Description = strings.TrimSpace(m[1])
		if t := titleLongRe.FindStringSubmatch(result); t != nil {
			out.Title = strings.TrimSpace(t[1])
		}
	} else if m := descShortRe.FindStringSubmatch(result); m != nil {
		out.Description = strings.TrimSpace(m[1])
		if t := titleShortRe.FindStringSubmatch(result); t != nil {
			out.Title = strings.TrimSpace(t[1])
		}
	} else if t := titleLongRe.FindStringSubmatch(result); t != nil {
		out.Title = strings.TrimSpace(t[1])
	}

	out.Title = TruncateTitle(out.Title)
	return out
}
