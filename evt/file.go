package evt

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrClosed is returned by accessors of a closed file
var ErrClosed = errors.New("file already closed")

// Diagnostics is implemented by files that can explain why they are corrupted
type Diagnostics interface {
	Problems() []string
}

// headerFile answers the File accessors from the file header alone.
// Records are never decoded, so recovered records are always 0.
type headerFile struct {
	file     *os.File
	header   *fileHeader
	problems []string
}

// Open opens the EVT file at path and decodes its header
func Open(path string) (File, error) {
	// Check if file exists
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("file does not exist: %s", path)
		}
		return nil, errors.Wrap(err, "cannot access file")
	}

	// Check if it's a regular file
	if !info.Mode().IsRegular() {
		return nil, errors.Errorf("not a regular file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open file")
	}

	header, err := readHeader(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &headerFile{
		file:     file,
		header:   header,
		problems: header.inconsistencies(info.Size()),
	}, nil
}

// readHeader sniffs and decodes the header at the start of r
func readHeader(r io.ReadSeeker) (*fileHeader, error) {
	ok, err := Sniff(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read file header")
	}
	if !ok {
		return nil, ErrNotEventLog
	}

	data := make([]byte, headerSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrap(err, "cannot read file header")
	}
	return decodeHeader(data)
}

func (f *headerFile) Version() (uint32, uint32, error) {
	if f == nil || f.file == nil {
		return 0, 0, ErrClosed
	}
	return f.header.MajorVersion, f.header.MinorVersion, nil
}

func (f *headerFile) Flags() (FileFlags, error) {
	if f == nil || f.file == nil {
		return 0, ErrClosed
	}
	return f.header.Flags, nil
}

func (f *headerFile) IsCorrupted() (bool, error) {
	if f == nil || f.file == nil {
		return false, ErrClosed
	}
	return len(f.problems) > 0, nil
}

func (f *headerFile) NumberOfRecords() (int, error) {
	if f == nil || f.file == nil {
		return 0, ErrClosed
	}
	return f.header.recordCount(), nil
}

func (f *headerFile) NumberOfRecoveredRecords() (int, error) {
	if f == nil || f.file == nil {
		return 0, ErrClosed
	}
	return 0, nil
}

// Close closes the underlying file. Closing twice returns ErrClosed.
func (f *headerFile) Close() error {
	if f == nil || f.file == nil {
		return ErrClosed
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// Problems returns the header inconsistencies found when the file was opened
func (f *headerFile) Problems() []string {
	if f == nil {
		return nil
	}
	return f.problems
}
