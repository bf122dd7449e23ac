// File: parser/parse-catalog.go

package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// entryRe matches "<identifier> <tag> [name]" with tab separated fields
var entryRe = regexp.MustCompile(`^(0[xX][0-9a-fA-F]{1,8})\t+([A-Za-z0-9_-]+)(?:\t+(.*))?$`)

// ParseCatalogFile parses the catalog file at path
func ParseCatalogFile(path string) (*ParsedCatalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog")
	}
	defer file.Close()

	return ParseCatalog(file, path)
}

// ParseCatalog parses catalog lines from r. Blank lines and lines starting
// with '#' are skipped. Identifiers and tags must be unique.
func ParseCatalog(r io.Reader, source string) (*ParsedCatalog, error) {
	catalog := &ParsedCatalog{Source: source}

	ids := make(map[uint32]*EntryDef)
	tags := make(map[string]*EntryDef)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \r")

		// Skip comments and blank lines
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		matches := entryRe.FindStringSubmatch(line)
		if matches == nil {
			return nil, errors.Errorf("%s:%d: malformed entry %q", source, lineNo, line)
		}

		id, err := strconv.ParseUint(matches[1], 0, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: parse identifier", source, lineNo)
		}

		entry := &EntryDef{
			ID:   uint32(id),
			Tag:  matches[2],
			Name: strings.TrimSpace(matches[3]),
			Line: lineNo,
		}

		if entry.ID == 0 {
			return nil, errors.Errorf("%s:%d: identifier 0x0000 is reserved", source, lineNo)
		}
		if prev, ok := ids[entry.ID]; ok {
			return nil, errors.Errorf("%s:%d: identifier 0x%04x already defined on line %d", source, lineNo, entry.ID, prev.Line)
		}
		if prev, ok := tags[entry.Tag]; ok {
			return nil, errors.Errorf("%s:%d: tag %q already defined on line %d", source, lineNo, entry.Tag, prev.Line)
		}
		ids[entry.ID] = entry
		tags[entry.Tag] = entry

		// Windows tags such as "es-ES_tradnl" are kept but flagged
		if _, err := language.Parse(entry.Tag); err != nil {
			catalog.Warnings = append(catalog.Warnings,
				fmt.Sprintf("%s:%d: tag %q is not well-formed BCP 47: %v", source, lineNo, entry.Tag, err))
		}

		catalog.Entries = append(catalog.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}

	sort.Slice(catalog.Entries, func(i, j int) bool {
		return catalog.Entries[i].ID < catalog.Entries[j].ID
	})

	return catalog, nil
}
