package ninep

import (
	"errors"
	"fmt"
	"io"
)

// A SizeError reports a read or write that could not complete
// because the buffer provided to it was too short. Have counts the
// usable bytes in the buffer and Need counts the bytes the operation
// required.
type SizeError struct {
	Op   string // the failing operation, such as "read qid"
	Have int
	Need int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: short buffer (have %d, need %d)", e.Op, e.Have, e.Need)
}

// Unwrap returns io.ErrShortBuffer, so that errors.Is(err,
// io.ErrShortBuffer) is true for any SizeError.
func (e *SizeError) Unwrap() error { return io.ErrShortBuffer }

var (
	// ErrLongData is returned when building or writing a
	// length-prefixed byte string of more than MaxDataLen bytes,
	// which cannot be represented in its 2-byte length field.
	ErrLongData = errors.New("data longer than max uint16")

	// ErrBadQid is returned when writing a Qid that is not exactly
	// QidLen bytes long.
	ErrBadQid = errors.New("qid must be 13 bytes long")
)

type parseError string

func (p parseError) Error() string { return string(p) }

var (
	errShortStat    = parseError("stat structure too short")
	errLongStat     = parseError("stat structure too long")
	errStatSize     = parseError("stat size field disagrees with structure size")
	errLongLength   = parseError("length field in stat structure too large")
	errLongFilename = parseError("file name too long")
	errLongUsername = parseError("uid or gid name too long")
	errInvalidUTF8  = parseError("string is not valid utf8")
)
