package locale

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// caseVariants returns every upper/lower combination of a two-letter tag
func caseVariants(tag string) []string {
	lo, up := strings.ToLower(tag), strings.ToUpper(tag)
	return []string{
		lo,
		up,
		up[:1] + lo[1:],
		lo[:1] + up[1:],
	}
}

func twoLetterEntries(t *testing.T, table *Table) []Entry {
	var out []Entry
	for _, entry := range table.Entries() {
		if entry.IsPrimary() && len(entry.Tag) == 2 {
			out = append(out, entry)
		}
	}
	require.NotEmpty(t, out)
	return out
}

func TestIdentifierFromStringIsCaseInsensitive(t *testing.T) {
	for _, entry := range twoLetterEntries(t, Default) {
		for _, variant := range caseVariants(entry.Tag) {
			id, ok, err := Default.IdentifierFromString(variant, len(variant))
			require.NoError(t, err)
			assert.True(t, ok, variant)
			assert.Equal(t, entry.ID, id, variant)
		}
	}
}

func TestIdentifierFromStringKnownValues(t *testing.T) {
	tests := []struct {
		input string
		id    uint32
	}{
		{"en", 0x0009},
		{"EN", 0x0009},
		{"en-US", 0x0009},
		{"fr", 0x000c},
		{"fr-CA", 0x000c},
		{"de_DE", 0x0007},
		{"ja", 0x0011},
		{"no", 0x0014},
		{"sk", 0x001b},
		{"zu", 0x0035},
		{"gd", 0x0091},
	}
	for _, tt := range tests {
		id, ok, err := IdentifierFromString(tt.input, len(tt.input))
		require.NoError(t, err)
		assert.True(t, ok, tt.input)
		assert.Equal(t, tt.id, id, tt.input)
	}
}

func TestIdentifierFromStringOnlyFirstTwoCharsCount(t *testing.T) {
	id, ok, err := Default.IdentifierFromString("enXXXXXX", 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0009), id)

	// The length limits what is read, not the string
	id, ok, err = Default.IdentifierFromString("en", 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Undefined, id)
}

func TestIdentifierFromStringShortInput(t *testing.T) {
	for _, input := range []string{"", "e", "E", "-"} {
		id, ok, err := Default.IdentifierFromString(input, len(input))
		require.NoError(t, err)
		assert.False(t, ok, input)
		assert.Equal(t, Undefined, id, input)
	}
}

func TestIdentifierFromStringUnknownPrefix(t *testing.T) {
	for _, input := range []string{"xx", "xx-ZZ", "XX-zz", "qq", "zz-Latn", "e1", "--", "é"} {
		id, ok, err := Default.IdentifierFromString(input, len(input))
		require.NoError(t, err)
		assert.False(t, ok, input)
		assert.Equal(t, Undefined, id, input)
	}
}

func TestIdentifierFromStringThreeLetterTags(t *testing.T) {
	// Only two characters are significant, so "hsb" reads as "hs"
	id, ok := Default.Lookup("hsb")
	assert.False(t, ok)
	assert.Equal(t, Undefined, id)

	// and "fil" reads as Finnish
	id, ok = Default.Lookup("fil")
	assert.True(t, ok)
	assert.Equal(t, uint32(0x000b), id)
}

func TestIdentifierFromStringInvalidArgument(t *testing.T) {
	_, ok, err := Default.IdentifierFromString("en", -1)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	id, ok, err := Default.IdentifierFromString("en", 3)
	assert.False(t, ok)
	assert.Equal(t, Undefined, id)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRoundTrip(t *testing.T) {
	for _, entry := range twoLetterEntries(t, Default) {
		id, ok := Default.Lookup(entry.Tag)
		require.True(t, ok, entry.Tag)

		tag, ok := Default.IdentifierToString(id)
		require.True(t, ok, entry.Tag)
		assert.Equal(t, entry.Tag, tag)
	}

	// Tags outside the table never resolve
	for _, tag := range []string{"xx", "qq", "zz"} {
		_, ok := Default.Lookup(tag)
		assert.False(t, ok, tag)
	}
}

func TestIdentifierToString(t *testing.T) {
	tag, ok := IdentifierToString(0x0009)
	assert.True(t, ok)
	assert.Equal(t, "en", tag)

	tag, ok = IdentifierToString(0x0004)
	assert.True(t, ok)
	assert.Equal(t, "zh-Hans", tag)

	tag, ok = IdentifierToString(0x002e)
	assert.True(t, ok)
	assert.Equal(t, "hsb", tag)

	for _, id := range []uint32{Undefined, 0x0030, 0x0091 + 1, 0x0409, 0xffffffff} {
		tag, ok := IdentifierToString(id)
		assert.False(t, ok, "0x%04x", id)
		assert.Empty(t, tag)
	}
}

func TestExtendedCatalog(t *testing.T) {
	tag, ok := Extended.IdentifierToString(0x0409)
	assert.True(t, ok)
	assert.Equal(t, "en-US", tag)

	entry, ok := Extended.Entry(0x0c0a)
	require.True(t, ok)
	assert.Equal(t, "es-ES", entry.Tag)
	assert.False(t, entry.IsPrimary())

	// Forward lookups resolve to the primary identifier
	id, ok := Extended.Lookup("en-US")
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0009), id)

	assert.Greater(t, Extended.Len(), Default.Len())
	for _, entry := range Default.Entries() {
		got, ok := Extended.Entry(entry.ID)
		require.True(t, ok)
		assert.Equal(t, entry, got)
	}
}

func TestEntriesAreSortedCopies(t *testing.T) {
	entries := Default.Entries()
	require.Equal(t, Default.Len(), len(entries))
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].ID, entries[i].ID)
	}

	entries[0].Tag = "changed"
	tag, _ := Default.IdentifierToString(entries[0].ID)
	assert.NotEqual(t, "changed", tag)
}

func TestEveryEntryIsPrimaryInDefault(t *testing.T) {
	for _, entry := range Default.Entries() {
		assert.True(t, entry.IsPrimary(), "0x%04x %s", entry.ID, entry.Tag)
		assert.NotEmpty(t, entry.Name, "0x%04x %s", entry.ID, entry.Tag)
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := NewTable("test", []Entry{{ID: 1, Tag: "aa"}, {ID: 1, Tag: "bb"}})
	assert.Error(t, err)

	_, err = NewTable("test", []Entry{{ID: 1, Tag: "aa"}, {ID: 2, Tag: "aa"}})
	assert.Error(t, err)

	_, err = NewTable("test", []Entry{{ID: Undefined, Tag: "aa"}})
	assert.Error(t, err)

	table, err := NewTable("test", []Entry{{ID: 2, Tag: "bb"}, {ID: 1, Tag: "aa"}})
	require.NoError(t, err)
	assert.Equal(t, "test", table.Name())
	assert.Equal(t, uint32(1), table.Entries()[0].ID)
}

func TestForCatalog(t *testing.T) {
	table, err := ForCatalog(CatalogPrimary)
	require.NoError(t, err)
	assert.Same(t, Default, table)

	table, err = ForCatalog("")
	require.NoError(t, err)
	assert.Same(t, Default, table)

	table, err = ForCatalog(CatalogExtended)
	require.NoError(t, err)
	assert.Same(t, Extended, table)

	_, err = ForCatalog("full")
	assert.Error(t, err)
}

func TestEntryLanguageTag(t *testing.T) {
	entry, ok := Extended.Entry(0x0409)
	require.True(t, ok)

	tag, err := entry.LanguageTag()
	require.NoError(t, err)
	assert.Equal(t, "en-US", tag.String())

	_, err = Entry{ID: 0x0001, Tag: "not a tag"}.LanguageTag()
	assert.Error(t, err)
}
