// Package report renders the operator-facing summary of an EVT file.
package report

import (
	"github.com/pkg/errors"

	"greg-hacke/go-evtinfo/evt"
)

// Summary holds the file metadata shown in a report
type Summary struct {
	MajorVersion         uint32
	MinorVersion         uint32
	Flags                evt.FileFlags
	IsCorrupted          bool
	RecordCount          int
	RecoveredRecordCount int
	LogType              evt.LogType
}

// Gather reads every summary field from f. The first accessor failure aborts
// and is returned with the accessor named; errors.Cause yields it unchanged.
func Gather(f evt.File, logType evt.LogType) (*Summary, error) {
	if f == nil {
		return nil, errors.New("invalid file")
	}

	s := &Summary{LogType: logType}
	var err error

	if s.MajorVersion, s.MinorVersion, err = f.Version(); err != nil {
		return nil, errors.Wrap(err, "unable to retrieve version")
	}
	if s.Flags, err = f.Flags(); err != nil {
		return nil, errors.Wrap(err, "unable to retrieve flags")
	}
	if s.IsCorrupted, err = f.IsCorrupted(); err != nil {
		return nil, errors.Wrap(err, "unable to determine if file is corrupted")
	}
	if s.RecordCount, err = f.NumberOfRecords(); err != nil {
		return nil, errors.Wrap(err, "unable to retrieve number of records")
	}
	if s.RecoveredRecordCount, err = f.NumberOfRecoveredRecords(); err != nil {
		return nil, errors.Wrap(err, "unable to retrieve number of recovered records")
	}

	return s, nil
}
