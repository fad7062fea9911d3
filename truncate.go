package studiolingo

// MaxTitleLength is the host platform's hard ceiling on title length.
const MaxTitleLength = 100

// TruncateTitle enforces the title length ceiling deterministically rather
// than relying on the model to self-limit. Titles over 100 characters are
// cut at 97 characters, then backed up to the last space when that space
// falls past character 70 (so whole words survive), and "..." is appended.
// Titles within the limit are returned unchanged. Lengths are measured in
// runes so multi-byte scripts are not cut mid-character.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTitleLength {
		return title
	}

	cut := runes[:MaxTitleLength-3]
	lastSpace := -1
	for i, r := range cut {
		if r == ' ' {
			lastSpace = i
		}
	}
	if lastSpace > 70 {
		cut = cut[:lastSpace]
	}
	return string(cut) + "..."
}
