package locale

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for lookups a caller should never make
var ErrInvalidArgument = errors.New("invalid argument")

// Table maps locale identifiers to language tags and back.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	name    string
	entries []Entry           // sorted by identifier
	byID    map[uint32]Entry  // identifier -> entry
	byCode  map[string]uint32 // two-letter code -> identifier
}

// NewTable builds a table from entries. Identifiers and tags must be unique.
func NewTable(name string, entries []Entry) (*Table, error) {
	t := &Table{
		name:    name,
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[uint32]Entry, len(entries)),
		byCode:  make(map[string]uint32),
	}

	tags := make(map[string]uint32, len(entries))
	for _, entry := range entries {
		if entry.ID == Undefined {
			return nil, errors.Errorf("table %s: identifier 0x%04x is reserved", name, entry.ID)
		}
		if prev, ok := t.byID[entry.ID]; ok {
			return nil, errors.Errorf("table %s: duplicate identifier 0x%04x (%s, %s)", name, entry.ID, prev.Tag, entry.Tag)
		}
		if id, ok := tags[entry.Tag]; ok {
			return nil, errors.Errorf("table %s: tag %q used by 0x%04x and 0x%04x", name, entry.Tag, id, entry.ID)
		}
		tags[entry.Tag] = entry.ID
		t.byID[entry.ID] = entry
		t.entries = append(t.entries, entry)

		if code := entry.code(); code != "" {
			t.byCode[code] = entry.ID
		}
	}

	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].ID < t.entries[j].ID
	})

	return t, nil
}

// mustNewTable is NewTable for compiled-in data
func mustNewTable(name string, entries ...[]Entry) *Table {
	var all []Entry
	for _, set := range entries {
		all = append(all, set...)
	}
	t, err := NewTable(name, all)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the catalog name of the table
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries sorted by identifier
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// IdentifierFromString determines the locale identifier for the first length
// bytes of s. Only the first two characters are significant and letters match
// case-insensitively, so "en", "EN" and "en-GB" all resolve alike.
//
// The boolean is false, with Undefined, when no entry matches. An error is
// returned only for an invalid length.
func (t *Table) IdentifierFromString(s string, length int) (uint32, bool, error) {
	if length < 0 {
		return Undefined, false, errors.Wrapf(ErrInvalidArgument, "string length %d is negative", length)
	}
	if length > len(s) {
		return Undefined, false, errors.Wrapf(ErrInvalidArgument, "string length %d exceeds string size %d", length, len(s))
	}
	if length < 2 {
		return Undefined, false, nil
	}

	id, ok := t.byCode[normalizeCode(s[0], s[1])]
	if !ok {
		return Undefined, false, nil
	}
	return id, true, nil
}

// Lookup resolves a whole tag to its locale identifier
func (t *Table) Lookup(tag string) (uint32, bool) {
	id, ok, err := t.IdentifierFromString(tag, len(tag))
	if err != nil {
		return Undefined, false
	}
	return id, ok
}

// IdentifierToString returns the language tag of a locale identifier.
// The boolean is false when the identifier is not supported.
func (t *Table) IdentifierToString(id uint32) (string, bool) {
	entry, ok := t.byID[id]
	if !ok {
		return "", false
	}
	return entry.Tag, true
}

// Entry returns the full entry of a locale identifier
func (t *Table) Entry(id uint32) (Entry, bool) {
	entry, ok := t.byID[id]
	return entry, ok
}
