package evt

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	// headerSize is the size of the file header and of its trailing copy
	headerSize = 0x30

	// signature identifies both the file header and event records
	signature = "LfLe"
)

var (
	// ErrNotEventLog is returned when the data has no EVT file header
	ErrNotEventLog = errors.New("not an EVT file")

	// ErrUnsupportedVersion is returned for format versions other than 1.1
	ErrUnsupportedVersion = errors.New("unsupported EVT format version")
)

// fileHeader is the fixed 48-byte header at the start of an EVT file.
// All values are little-endian.
type fileHeader struct {
	Size               uint32
	Signature          [4]byte
	MajorVersion       uint32
	MinorVersion       uint32
	FirstRecordOffset  uint32
	EndOfFileOffset    uint32
	NextRecordNumber   uint32
	OldestRecordNumber uint32
	MaximumFileSize    uint32
	Flags              FileFlags
	RetentionPeriod    uint32
	CopyOfSize         uint32
}

// decodeHeader decodes the file header from data
func decodeHeader(data []byte) (*fileHeader, error) {
	if len(data) < headerSize {
		return nil, errors.Wrapf(ErrNotEventLog, "header too short: %d bytes", len(data))
	}

	le := binary.LittleEndian
	h := &fileHeader{
		Size:               le.Uint32(data[0x00:0x04]),
		MajorVersion:       le.Uint32(data[0x08:0x0c]),
		MinorVersion:       le.Uint32(data[0x0c:0x10]),
		FirstRecordOffset:  le.Uint32(data[0x10:0x14]),
		EndOfFileOffset:    le.Uint32(data[0x14:0x18]),
		NextRecordNumber:   le.Uint32(data[0x18:0x1c]),
		OldestRecordNumber: le.Uint32(data[0x1c:0x20]),
		MaximumFileSize:    le.Uint32(data[0x20:0x24]),
		Flags:              FileFlags(le.Uint32(data[0x24:0x28])),
		RetentionPeriod:    le.Uint32(data[0x28:0x2c]),
		CopyOfSize:         le.Uint32(data[0x2c:0x30]),
	}
	copy(h.Signature[:], data[0x04:0x08])

	if h.Size != headerSize || string(h.Signature[:]) != signature {
		return nil, ErrNotEventLog
	}
	if h.MajorVersion != 1 || h.MinorVersion != 1 {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "%d.%d", h.MajorVersion, h.MinorVersion)
	}

	return h, nil
}

// recordCount returns the number of records in the header's record number
// window. An oldest record number of 0 denotes an empty log.
func (h *fileHeader) recordCount() int {
	if h.OldestRecordNumber == 0 || h.OldestRecordNumber > h.NextRecordNumber {
		return 0
	}
	return int(h.NextRecordNumber - h.OldestRecordNumber)
}

// inconsistencies lists the ways the header contradicts itself or a file of
// fileSize bytes
func (h *fileHeader) inconsistencies(fileSize int64) []string {
	var problems []string

	if h.CopyOfSize != h.Size {
		problems = append(problems, "header size copy mismatch")
	}
	if int64(h.FirstRecordOffset) > fileSize {
		problems = append(problems, "first record offset beyond end of file")
	}
	if int64(h.EndOfFileOffset) > fileSize {
		problems = append(problems, "end of file record offset beyond end of file")
	}
	if h.OldestRecordNumber > h.NextRecordNumber {
		problems = append(problems, "oldest record number after next record number")
	}

	return problems
}
