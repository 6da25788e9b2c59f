package ninep

import (
	"bufio"
	"io"
)

// NewScanner returns a Scanner with an internal buffer of size
// DefaultBufSize.
func NewScanner(r io.Reader) *Scanner {
	return NewScannerSize(r, DefaultBufSize)
}

// NewScannerSize returns a Scanner with an internal buffer of size
// max(MinBufSize, bufsize) bytes. A Scanner with a larger buffer
// performs fewer reads on the underlying io.Reader when scanning
// many entries, such as the contents of a large directory.
func NewScannerSize(r io.Reader, bufsize int) *Scanner {
	if bufsize < MinBufSize {
		bufsize = MinBufSize
	}
	return &Scanner{br: bufio.NewReaderSize(r, bufsize)}
}

// A Scanner provides an interface for reading a stream of stat
// structures from an io.Reader, such as the data returned by a Tread
// request on a directory. Successive calls to the Next method of a
// Scanner will fetch and validate stat structures from the input
// stream, until EOF is encountered, or another error is encountered.
//
// A Scanner is not safe for concurrent use. Usage of any Scanner
// method should be delegated to a single thread of execution or
// protected by a mutex.
type Scanner struct {
	// internal buffer holds the current structure
	br *bufio.Reader

	// last fetched structure. slices on br's internal buffer,
	// so only valid until the next call to Next
	stat Stat

	// last error encountered when reading or parsing
	err error
}

// Reset resets a Scanner to read from a new io.Reader.
func (s *Scanner) Reset(r io.Reader) {
	s.br.Reset(r)
	s.stat = nil
	s.err = nil
}

// Err returns the first error encountered during scanning. If the
// underlying io.Reader was closed in the middle of a stat structure,
// Err will return io.ErrUnexpectedEOF. Otherwise, io.EOF is not
// considered to be an error, and is not relayed by Err.
//
// Unlike read errors, a malformed structure in the stream is a
// scanning error; the stream offset of the following entry can no
// longer be determined, so scanning stops and Err returns the
// parsing error.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Stat returns the last stat structure scanned. It returns a non-nil
// Stat if and only if the last call to the Scanner's Next method
// returned true. The returned Stat slices on the Scanner's internal
// buffer, and is only valid until the next call to Next; to retain
// it, copy it first.
func (s *Scanner) Stat() Stat {
	return s.stat
}

// Next fetches the next stat structure in the stream. If an error is
// encountered reading or parsing it, Next returns false, and the
// Scanner's Err method will return the first error encountered.
//
// If Next returns true, the Stat method of the Scanner will return
// the fetched structure.
func (s *Scanner) Next() bool {
	if s.stat != nil {
		if _, err := s.br.Discard(len(s.stat)); err != nil {
			panic(err) // structure was buffered in full
		}
		s.stat = nil
	}
	if s.err != nil {
		return false
	}
	hdr, err := s.br.Peek(Uint16Size)
	if err != nil {
		if err == io.EOF && len(hdr) > 0 {
			err = io.ErrUnexpectedEOF
		}
		s.err = err
		return false
	}
	size := int(guint16(hdr)) + 2
	if size > MaxStatLen {
		s.err = errLongStat
		return false
	}
	if size < minStatLen {
		s.err = errShortStat
		return false
	}
	record, err := s.br.Peek(size)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		s.err = err
		return false
	}
	stat, rest, err := ReadStat(record)
	if err != nil {
		s.err = err
		return false
	}
	if len(rest) != 0 {
		// inner fields stop short of the declared size
		s.err = errStatSize
		return false
	}
	s.stat = stat
	return true
}
