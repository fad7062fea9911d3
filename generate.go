package studiolingo

import (
	"fmt"
	"regexp"
	"strings"
)

// TitleStyle selects the tone of generated title suggestions.
type TitleStyle string

const (
	StyleViral     TitleStyle = "viral"
	StyleClickbait TitleStyle = "clickbait"
	StyleSEO       TitleStyle = "seo"
	StylePro       TitleStyle = "pro"
	StyleCasual    TitleStyle = "casual"
)

var titleStyleGuides = map[TitleStyle]string{
	StyleViral:     "viral, catchy, emotional, attention-grabbing with power words",
	StyleClickbait: "clickbait style, extremely curiosity-inducing, shocking, use cliffhangers, create urgency, make viewers NEED to click",
	StyleSEO:       "SEO optimized with keywords at the beginning, searchable",
	StylePro:       "professional, clear, trustworthy, informative",
	StyleCasual:    "casual, friendly, conversational, relatable",
}

// TitleLengthHint selects the character budget title suggestions aim for.
type TitleLengthHint string

const (
	TitleLengthAuto   TitleLengthHint = "auto"
	TitleLengthShort  TitleLengthHint = "short"
	TitleLengthMedium TitleLengthHint = "medium"
	TitleLengthLong   TitleLengthHint = "long"
)

var titleLengthGuides = map[TitleLengthHint]string{
	TitleLengthAuto:   "50-80",
	TitleLengthShort:  "30-50",
	TitleLengthMedium: "50-70",
	TitleLengthLong:   "70-100",
}

// TitleSuggestionCount is how many alternatives one request asks for and the
// most the parser keeps.
const TitleSuggestionCount = 5

// TitleOptions tunes a title-suggestion request. The zero value asks for
// viral-style titles for a general audience in the source content's own
// language.
type TitleOptions struct {
	Style    TitleStyle
	Audience string
	Length   TitleLengthHint
	Language string // catalog code, or empty to match the source content
	Keyword  string // must appear in every suggestion when set
	Emoji    bool
}

// BuildTitleSuggestionsPrompt frames a title-suggestion request.
// targetName is the human-readable output language; empty means the model
// should detect and keep the source content's language.
func BuildTitleSuggestionsPrompt(src Metadata, opts TitleOptions, targetName string) string {
	style, ok := titleStyleGuides[opts.Style]
	if !ok {
		style = titleStyleGuides[StyleViral]
	}
	lengthGuide, ok := titleLengthGuides[opts.Length]
	if !ok {
		lengthGuide = titleLengthGuides[TitleLengthAuto]
	}
	audience := strings.TrimSpace(opts.Audience)
	if audience == "" {
		audience = "general"
	}

	content := strings.TrimSpace(src.Title)
	if content == "" {
		content = strings.TrimSpace(src.Description)
	}
	if content == "" {
		content = "General video"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d different video title suggestions.\n\n", TitleSuggestionCount)
	fmt.Fprintf(&b, "ORIGINAL CONTENT: %q\n", content)

	if targetName == "" {
		b.WriteString(`
CRITICAL LANGUAGE RULE:
- First, detect the language of the ORIGINAL CONTENT above
- You MUST generate ALL titles in the SAME LANGUAGE as the original content
- DO NOT translate or change the language
- DO NOT mix languages
`)
	} else {
		fmt.Fprintf(&b, `
CRITICAL LANGUAGE RULE:
- You MUST generate ALL titles in %s
- The output language is %s, regardless of the original content language
- Make sure the titles sound natural in %s
`, targetName, targetName, targetName)
	}

	fmt.Fprintf(&b, "\nStyle: %s\n", style)
	fmt.Fprintf(&b, "Target Audience: %s\n", audience)
	fmt.Fprintf(&b, "Length: %s characters\n", lengthGuide)
	if kw := strings.TrimSpace(opts.Keyword); kw != "" {
		fmt.Fprintf(&b, "Main Keyword (must include): %s\n", kw)
	}
	if opts.Emoji {
		b.WriteString("Include relevant emoji\n")
	} else {
		b.WriteString("No emoji\n")
	}

	fmt.Fprintf(&b, `
Rules:
- Make them compelling and clickable
- Vary the approach for each suggestion
- Each title should be unique and creative
- Follow the language rule strictly

Output format (number each title 1-%d):
1. [first title]
2. [second title]
3. [third title]
4. [fourth title]
5. [fifth title]`, TitleSuggestionCount)

	return b.String()
}

var numberedTitleRe = regexp.MustCompile(`^\d+[.)]\s*(.+)`)

// ParseTitleSuggestions extracts numbered suggestions ("1. Title" or
// "1) Title") from a model response. Unnumbered lines are ignored and at
// most TitleSuggestionCount entries come back.
func ParseTitleSuggestions(result string) []string {
	var titles []string
	for _, line := range strings.Split(result, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := numberedTitleRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		titles = append(titles, strings.TrimSpace(m[1]))
		if len(titles) == TitleSuggestionCount {
			break
		}
	}
	return titles
}

// DescriptionStyle selects the voice of a generated description.
type DescriptionStyle string

const (
	DescInformative  DescriptionStyle = "informative"
	DescEngaging     DescriptionStyle = "engaging"
	DescProfessional DescriptionStyle = "professional"
	DescCasual       DescriptionStyle = "casual"
)

var descStyleGuides = map[DescriptionStyle]string{
	DescInformative:  "informative, educational, clear and structured",
	DescEngaging:     "engaging, conversational, storytelling approach",
	DescProfessional: "professional, formal, business-like",
	DescCasual:       "casual, friendly, relatable",
}

// DescriptionLengthHint selects the approximate word budget.
type DescriptionLengthHint string

const (
	DescLengthShort  DescriptionLengthHint = "short"
	DescLengthMedium DescriptionLengthHint = "medium"
	DescLengthLong   DescriptionLengthHint = "long"
)

var descLengthWords = map[DescriptionLengthHint]int{
	DescLengthShort:  100,
	DescLengthMedium: 200,
	DescLengthLong:   400,
}

// DescriptionOptions tunes a description-generation request. The zero value
// asks for an informative, medium-length description with a call to action
// and no emoji or hashtags.
type DescriptionOptions struct {
	Style        DescriptionStyle
	Length       DescriptionLengthHint
	Emoji        bool
	Hashtags     bool // append 5-8 hashtags at the end
	CallToAction bool
}

// BuildDescriptionPrompt frames a description-generation request. The output
// language always follows the source title's language; the model detects it.
func BuildDescriptionPrompt(src Metadata, opts DescriptionOptions) string {
	style, ok := descStyleGuides[opts.Style]
	if !ok {
		style = descStyleGuides[DescInformative]
	}
	words, ok := descLengthWords[opts.Length]
	if !ok {
		words = descLengthWords[DescLengthMedium]
	}

	title := strings.TrimSpace(src.Title)
	if title == "" {
		title = "Untitled video"
	}

	var b strings.Builder
	b.WriteString("Generate a video description.\n\n")
	fmt.Fprintf(&b, "ORIGINAL TITLE: %q\n", title)
	b.WriteString(`
CRITICAL LANGUAGE RULE:
- First, detect the language of the ORIGINAL TITLE above
- You MUST generate the description in the SAME LANGUAGE as the title
- DO NOT translate or change the language
`)
	fmt.Fprintf(&b, "\nStyle: %s\n", style)
	fmt.Fprintf(&b, "Length: approximately %d words\n", words)

	b.WriteString(`
Rules:
- Start with compelling hook
- Include relevant keywords naturally
`)
	if opts.Emoji {
		b.WriteString("- Include relevant emoji throughout the description\n")
	} else {
		b.WriteString("- Do NOT include emoji\n")
	}
	if opts.CallToAction {
		b.WriteString("- Add call to action (like, subscribe, comment) in the same language\n")
	}
	if opts.Hashtags {
		b.WriteString("- Include 5-8 relevant hashtags at the end in the same language\n")
	} else {
		b.WriteString("- Do NOT include hashtags\n")
	}
	b.WriteString(`- Use line breaks for readability
- MUST be in the same language as the original title

Output ONLY the description text.`)

	return b.String()
}

// TagLanguage selects the language mix of generated tags.
type TagLanguage string

const (
	TagsMixed   TagLanguage = "mixed" // source language and English
	TagsEnglish TagLanguage = "english"
	TagsLocal   TagLanguage = "local" // source language only
)

// DefaultTagCount is requested when TagOptions.Count is unset.
const DefaultTagCount = 20

// TagOptions tunes a tag-generation request.
type TagOptions struct {
	Count    int
	Language TagLanguage
	LongTail bool // mix in long-tail keyword phrases
}

// BuildTagsPrompt frames a tag-generation request. localName is the
// human-readable name of the source content's language, used by the mixed
// and local modes.
func BuildTagsPrompt(src Metadata, opts TagOptions, localName string) string {
	count := opts.Count
	if count <= 0 {
		count = DefaultTagCount
	}
	if localName == "" {
		localName = "the detected language"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d video tags.\n\n", count)
	b.WriteString("ORIGINAL CONTENT:\n")
	fmt.Fprintf(&b, "Title: %q\n", src.Title)
	fmt.Fprintf(&b, "Description: %q\n", src.Description)

	b.WriteString(`
CRITICAL LANGUAGE RULE:
- First, detect the language of the ORIGINAL CONTENT above
- Generate tags based on the detected language
`)
	switch opts.Language {
	case TagsEnglish:
		b.WriteString("- Generate ALL tags in English only\n")
	case TagsLocal:
		fmt.Fprintf(&b, "- Generate ALL tags in %s only (NO English)\n", localName)
	default:
		fmt.Fprintf(&b, "- Mix tags in %s AND English\n", localName)
	}

	if opts.LongTail {
		b.WriteString("\nInclude both short and long-tail keywords\n")
	} else {
		b.WriteString("\nFocus on short keywords\n")
	}
	b.WriteString("\nOutput as comma-separated list ONLY, nothing else.")

	return b.String()
}

// ParseTags splits a comma-separated model response into clean tags. Line
// breaks count as separators too since models often wrap long lists. Empty
// entries are dropped.
func ParseTags(result string) []string {
	fields := strings.FieldsFunc(result, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	var tags []string
	for _, f := range fields {
		tag := strings.TrimSpace(f)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
