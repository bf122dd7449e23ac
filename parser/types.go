package parser

// ParsedCatalog contains all data parsed from a locale catalog file
type ParsedCatalog struct {
	// Source is the file the catalog was read from, for messages
	Source string

	// Entries holds every entry sorted by identifier
	Entries []*EntryDef

	// Warnings lists entries that parsed but are not well-formed BCP 47
	Warnings []string
}

// EntryDef represents a single catalog line
type EntryDef struct {
	ID   uint32 // Locale identifier
	Tag  string // Language tag
	Name string // English display name
	Line int    // Line number in the source file
}

// IsPrimary reports whether the entry names a language without a region
func (e *EntryDef) IsPrimary() bool {
	return e.ID < 0x0400
}

// Primary returns the primary language entries
func (c *ParsedCatalog) Primary() []*EntryDef {
	var out []*EntryDef
	for _, entry := range c.Entries {
		if entry.IsPrimary() {
			out = append(out, entry)
		}
	}
	return out
}

// Regional returns the entries that carry a sublanguage
func (c *ParsedCatalog) Regional() []*EntryDef {
	var out []*EntryDef
	for _, entry := range c.Entries {
		if !entry.IsPrimary() {
			out = append(out, entry)
		}
	}
	return out
}
