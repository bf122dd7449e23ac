package locale

import (
	"golang.org/x/text/language"
)

// Undefined is the identifier reported when a language tag matches no entry
const Undefined uint32 = 0x0000

// primaryLimit is the first identifier that carries a sublanguage (region)
const primaryLimit uint32 = 0x0400

// Entry represents a single locale identifier and its language tag
type Entry struct {
	ID   uint32 // Locale identifier, e.g. 0x0409
	Tag  string // Language tag, e.g. "en-US"
	Name string // English display name
}

// IsPrimary reports whether the entry names a language without a region
func (e Entry) IsPrimary() bool {
	return e.ID < primaryLimit
}

// LanguageTag parses the entry tag as a BCP 47 language tag
func (e Entry) LanguageTag() (language.Tag, error) {
	return language.Parse(e.Tag)
}

// code returns the two-letter lookup code of a primary entry, or "" when the
// entry cannot be reached by a forward lookup
func (e Entry) code() string {
	if !e.IsPrimary() || len(e.Tag) != 2 {
		return ""
	}
	return normalizeCode(e.Tag[0], e.Tag[1])
}

// normalizeCode lower-cases two ASCII characters into a lookup key
func normalizeCode(a, b byte) string {
	return string([]byte{toLowerASCII(a), toLowerASCII(b)})
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
