package studiolingo

import (
	"sort"
	"strings"
)

// Catalog is the registry of known languages plus the user's ordered
// subscription list. The catalog itself only grows; the subscription is
// freely mutated within the protected-head invariant. Catalog is not safe
// for concurrent use.
type Catalog struct {
	entries map[string]LanguageEntry
	custom  map[string]bool // codes registered by the user, overwritable
}

// NewCatalog creates a catalog seeded with the built-in language table.
func NewCatalog() *Catalog {
	c := &Catalog{
		entries: make(map[string]LanguageEntry, len(builtinLanguages)),
		custom:  make(map[string]bool),
	}
	for _, e := range builtinLanguages {
		c.entries[e.Code] = e
	}
	return c
}

// Register adds an entry to the catalog. Registering an existing built-in
// code is a no-op; a user-added entry is overwritten so its name and flag
// can be corrected.
func (c *Catalog) Register(code, displayName, flag string) {
	if _, ok := c.entries[code]; ok && !c.custom[code] {
		return
	}
	if flag == "" {
		flag = CustomFlag
	}
	c.entries[code] = LanguageEntry{Code: code, DisplayName: displayName, Flag: flag}
	c.custom[code] = true
}

// Get returns the entry for code. Unknown codes yield a fallback entry with
// the code as its name and the placeholder flag, so callers can always
// render something.
func (c *Catalog) Get(code string) LanguageEntry {
	if e, ok := c.entries[code]; ok {
		return e
	}
	return LanguageEntry{Code: code, DisplayName: code, Flag: CustomFlag}
}

// Has reports whether code exists in the catalog.
func (c *Catalog) Has(code string) bool {
	_, ok := c.entries[code]
	return ok
}

// DisplayName returns the human-readable name for code, falling back to the
// code itself.
func (c *Catalog) DisplayName(code string) string {
	return c.Get(code).DisplayName
}

// Flag returns the display flag for code, the placeholder for unknowns.
func (c *Catalog) Flag(code string) string {
	return c.Get(code).Flag
}

// IsCustom reports whether code was registered by the user.
func (c *Catalog) IsCustom(code string) bool {
	return c.custom[code]
}

// CustomEntries returns all user-registered entries, for persistence.
func (c *Catalog) CustomEntries() []LanguageEntry {
	var out []LanguageEntry
	for code := range c.custom {
		out = append(out, c.entries[code])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Variations returns the label spellings the host page may use for code:
// the curated variation table when present, always including the catalog
// display name.
func (c *Catalog) Variations(code string) []string {
	name := c.DisplayName(code)
	seen := map[string]bool{name: true}
	out := []string{name}
	for _, v := range NameVariations[code] {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// ListAvailable returns catalog codes not already subscribed, sorted
// case-insensitively by display name.
func (c *Catalog) ListAvailable(sub []string) []string {
	subscribed := make(map[string]bool, len(sub))
	for _, code := range sub {
		subscribed[code] = true
	}
	var out []string
	for code := range c.entries {
		if !subscribed[code] {
			out = append(out, code)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(c.DisplayName(out[i])) < strings.ToLower(c.DisplayName(out[j]))
	})
	return out
}

// Subscribe appends code to the subscription. Unknown codes are rejected;
// already-subscribed codes are a no-op.
func (c *Catalog) Subscribe(sub []string, code string) ([]string, error) {
	if !c.Has(code) {
		return sub, &UnknownLanguageError{Code: code}
	}
	for _, existing := range sub {
		if existing == code {
			return sub, nil
		}
	}
	return append(sub, code), nil
}

// Unsubscribe removes code from the subscription. Protected codes are
// rejected; missing codes are a no-op.
func (c *Catalog) Unsubscribe(sub []string, code string) ([]string, error) {
	if IsProtected(code) {
		return sub, &ProtectedLanguageError{Code: code}
	}
	for i, existing := range sub {
		if existing == code {
			return append(sub[:i:i], sub[i+1:]...), nil
		}
	}
	return sub, nil
}

// Reorder moves the element at fromIndex to toIndex. Moving a protected
// entry is a no-op, and toIndex is clamped so nothing lands inside the
// protected head.
func (c *Catalog) Reorder(sub []string, fromIndex, toIndex int) []string {
	if fromIndex < 0 || fromIndex >= len(sub) {
		return sub
	}
	if IsProtected(sub[fromIndex]) {
		return sub
	}
	if toIndex < len(ProtectedLanguages) {
		toIndex = len(ProtectedLanguages)
	}
	if toIndex >= len(sub) {
		toIndex = len(sub) - 1
	}
	out := make([]string, 0, len(sub))
	out = append(out, sub...)
	code := out[fromIndex]
	out = append(out[:fromIndex], out[fromIndex+1:]...)
	out = append(out[:toIndex], append([]string{code}, out[toIndex:]...)...)
	return out
}

// AddCustom registers a user-defined language and subscribes it. The code
// is lowercased and both fields are trimmed before validation.
func (c *Catalog) AddCustom(sub []string, code, name string) ([]string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	name = strings.TrimSpace(name)

	if code == "" || name == "" {
		return sub, &CustomLanguageError{Reason: ReasonEmptyFields, Code: code}
	}
	if len(code) > 10 {
		return sub, &CustomLanguageError{Reason: ReasonCodeTooLong, Code: code}
	}
	for _, existing := range sub {
		if existing == code {
			return sub, &CustomLanguageError{Reason: ReasonAlreadyExists, Code: code}
		}
	}

	if !c.Has(code) {
		c.Register(code, name, CustomFlag)
	}
	return append(sub, code), nil
}

// SortAlphabetical sorts non-protected entries case-insensitively by display
// name. Protected entries stay at the head in their original order.
func (c *Catalog) SortAlphabetical(sub []string) []string {
	head, rest := splitProtected(sub)
	sort.SliceStable(rest, func(i, j int) bool {
		return strings.ToLower(c.DisplayName(rest[i])) < strings.ToLower(c.DisplayName(rest[j]))
	})
	return append(head, rest...)
}

// ResetToDefault discards the subscription and returns a copy of the
// default list.
func (c *Catalog) ResetToDefault() []string {
	out := make([]string, len(DefaultSubscription))
	copy(out, DefaultSubscription)
	return out
}

// Normalize repairs the protected-head invariant on a subscription loaded
// from storage: protected codes move to the head in their fixed relative
// order, everything else keeps its order.
func (c *Catalog) Normalize(sub []string) []string {
	present := make(map[string]bool, len(sub))
	for _, code := range sub {
		present[code] = true
	}
	var head []string
	for _, code := range ProtectedLanguages {
		if present[code] {
			head = append(head, code)
		}
	}
	_, rest := splitProtected(sub)
	return append(head, rest...)
}

// IsProtected reports whether code is one of the protected subscription
// entries.
func IsProtected(code string) bool {
	for _, p := range ProtectedLanguages {
		if p == code {
			return true
		}
	}
	return false
}

// splitProtected partitions a subscription into its protected head (in
// ProtectedLanguages order) and the remaining codes (original order).
func splitProtected(sub []string) (head, rest []string) {
	for _, code := range sub {
		if IsProtected(code) {
			head = append(head, code)
		} else {
			rest = append(rest, code)
		}
	}
	ordered := make([]string, 0, len(head))
	for _, p := range ProtectedLanguages {
		for _, code := range head {
			if code == p {
				ordered = append(ordered, code)
			}
		}
	}
	return ordered, rest
}
