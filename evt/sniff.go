package evt

import (
	"encoding/binary"
	"io"
)

// Sniff reports whether r starts with an EVT file header. The read position
// is restored to the start of r.
func Sniff(r io.ReadSeeker) (bool, error) {
	// Header size and signature are enough to tell
	magic := make([]byte, 8)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}

	// Reset position
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	if n < len(magic) {
		return false, nil
	}
	return binary.LittleEndian.Uint32(magic[0:4]) == headerSize && string(magic[4:8]) == signature, nil
}
