package parser

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// GenerateGoFile generates the locale catalog Go source at outputPath
func GenerateGoFile(catalog *ParsedCatalog, outputPath string) error {
	src, err := GenerateGoSource(catalog, filepath.Base(catalog.Source))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(outputPath, src, 0644); err != nil {
		return errors.Wrapf(err, "write %s", outputPath)
	}
	return nil
}

// GenerateGoSource renders the catalog as gofmt-ed Go source for package locale
func GenerateGoSource(catalog *ParsedCatalog, sourceName string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by gen-locales. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package locale\n\n")

	writeEntries(&buf, "primaryEntries", "primary language identifiers", sourceName, catalog.Primary())
	fmt.Fprintf(&buf, "\n")
	writeEntries(&buf, "regionalEntries", "regional identifiers", sourceName, catalog.Regional())

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format generated source")
	}
	return src, nil
}

// writeEntries writes a single []Entry variable
func writeEntries(buf *bytes.Buffer, varName, what, sourceName string, entries []*EntryDef) {
	fmt.Fprintf(buf, "// %s contains %s from %s\n", varName, what, sourceName)
	fmt.Fprintf(buf, "var %s = []Entry{\n", varName)
	for _, entry := range entries {
		fmt.Fprintf(buf, "\t{ID: 0x%04x, Tag: %q, Name: %q},\n", entry.ID, entry.Tag, entry.Name)
	}
	fmt.Fprintf(buf, "}\n")
}
