// File: pkg/classify/errors.go
package classify

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	// ErrAccess wraps OS-level failures to read a file.
	ErrAccess = errors.New("file access failed")
	// ErrDecode wraps the final decode failure when no encoding succeeded.
	ErrDecode = errors.New("file decode failed")
)

// DecodeError describes the first byte an encoding could not decode.
type DecodeError struct {
	Encoding string
	Offset   int
	Byte     byte
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: can't decode byte 0x%02x in position %d: %s", e.Encoding, e.Byte, e.Offset, e.Reason)
}

// errorKind names the class of an OS error for diagnostics.
func errorKind(err error) string {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, fs.ErrNotExist):
		return "not found"
	case errors.Is(err, syscall.EISDIR):
		return "is a directory"
	default:
		return "I/O error"
	}
}
