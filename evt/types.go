// Package evt describes the Windows Event Log (EVT) file accessors the
// summary report is built from, and provides a header-level implementation.
package evt

import (
	"strings"
)

// File is an opened event log file
type File interface {
	// Version returns the major and minor format version
	Version() (major, minor uint32, err error)

	// Flags returns the file flags
	Flags() (FileFlags, error)

	// IsCorrupted reports whether the file structure is damaged
	IsCorrupted() (bool, error)

	// NumberOfRecords returns the number of live records
	NumberOfRecords() (int, error)

	// NumberOfRecoveredRecords returns the number of records recovered from
	// outside the live area
	NumberOfRecoveredRecords() (int, error)

	// Close releases the file
	Close() error
}

// FileFlags is the flags bitmask stored in the file header
type FileFlags uint32

// File flags
const (
	FlagIsDirty    FileFlags = 0x00000001
	FlagHasWrapped FileFlags = 0x00000002
	FlagIsFull     FileFlags = 0x00000004
	FlagArchive    FileFlags = 0x00000008
)

// knownFlags lists the flags in reporting order
var knownFlags = []struct {
	flag FileFlags
	name string
}{
	{FlagIsDirty, "dirty"},
	{FlagHasWrapped, "wrapped"},
	{FlagIsFull, "full"},
	{FlagArchive, "archive"},
}

// Has reports whether every bit of flag is set
func (f FileFlags) Has(flag FileFlags) bool {
	return f&flag == flag
}

// String returns the set flags joined by '|'
func (f FileFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, known := range knownFlags {
		if f.Has(known.flag) {
			names = append(names, known.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, "|")
}

// LogType is the event log category, known from the file name only
type LogType int

// Event log types
const (
	LogTypeUnknown LogType = iota
	LogTypeApplication
	LogTypeInternetExplorer
	LogTypeSecurity
	LogTypeSystem
)

// String returns the display name, or "" for LogTypeUnknown
func (t LogType) String() string {
	switch t {
	case LogTypeApplication:
		return "Application"
	case LogTypeInternetExplorer:
		return "Internet Explorer"
	case LogTypeSecurity:
		return "Security"
	case LogTypeSystem:
		return "System"
	default:
		return ""
	}
}

// Known reports whether t is one of the recognized log types
func (t LogType) Known() bool {
	return t.String() != ""
}
