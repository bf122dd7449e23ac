package report

import (
	"bytes"
	"fmt"
	"io"

	"greg-hacke/go-evtinfo/evt"
)

// flagLines lists the reported flags in output order
var flagLines = []struct {
	flag evt.FileFlags
	text string
}{
	{evt.FlagIsDirty, "Is dirty"},
	{evt.FlagHasWrapped, "Has wrapped"},
	{evt.FlagIsFull, "Is full"},
	{evt.FlagArchive, "Should be archived"},
}

// Render returns the report text for s
func Render(s *Summary) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Windows Event Log (EVT) information:\n")
	fmt.Fprintf(&buf, "\tVersion\t\t\t\t: %d.%d\n", s.MajorVersion, s.MinorVersion)
	fmt.Fprintf(&buf, "\tNumber of records\t\t: %d\n", s.RecordCount)
	fmt.Fprintf(&buf, "\tNumber of recovered records\t: %d\n", s.RecoveredRecordCount)

	if s.LogType.Known() {
		fmt.Fprintf(&buf, "\tLog type\t\t\t: %s\n", s.LogType)
	}
	if s.IsCorrupted {
		fmt.Fprintf(&buf, "\tIs corrupted\n")
	}
	if s.Flags != 0 {
		fmt.Fprintf(&buf, "\tFlags:\n")

		for _, line := range flagLines {
			if s.Flags.Has(line.flag) {
				fmt.Fprintf(&buf, "\t\t%s\n", line.text)
			}
		}
	}
	fmt.Fprintf(&buf, "\n")

	return buf.Bytes()
}

// WriteTo writes the rendered report to w in a single write
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(Render(s))
	return int64(n), err
}
