// Package locale resolves Windows locale identifiers to language tags and back.
//
// Two catalogs are compiled in. The primary catalog holds one entry per
// language and is the default. The extended catalog adds the regional
// identifiers (0x0401 and up) for reverse lookups; forward lookups resolve to
// the primary identifier in both.
package locale

import (
	"github.com/pkg/errors"
)

//go:generate go run ../cmd/gen-locales -o catalog_gen.go data/lcid.txt

// Catalog names accepted by ForCatalog
const (
	CatalogPrimary  = "primary"
	CatalogExtended = "extended"
)

var (
	// Default is the primary language catalog
	Default = mustNewTable(CatalogPrimary, primaryEntries)

	// Extended is the primary catalog plus regional identifiers
	Extended = mustNewTable(CatalogExtended, primaryEntries, regionalEntries)
)

// ForCatalog returns the table registered under name
func ForCatalog(name string) (*Table, error) {
	switch name {
	case CatalogPrimary, "":
		return Default, nil
	case CatalogExtended:
		return Extended, nil
	default:
		return nil, errors.Errorf("unknown locale catalog %q", name)
	}
}

// IdentifierFromString resolves a tag prefix using the Default table
func IdentifierFromString(s string, length int) (uint32, bool, error) {
	return Default.IdentifierFromString(s, length)
}

// IdentifierToString resolves an identifier using the Default table
func IdentifierToString(id uint32) (string, bool) {
	return Default.IdentifierToString(id)
}
