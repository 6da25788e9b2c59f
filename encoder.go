package ninep

import (
	"io"

	"aqwari.net/wire/ninep/internal/wire"
)

// An Encoder writes stat structures to an underlying io.Writer, in
// the form a 9P server returns them when a directory is read: one
// encoded structure after another, with no additional framing.
type Encoder struct {
	w *wire.Writer
}

// NewEncoder creates a new Encoder that writes stat structures to w.
// Encoders are safe to use from multiple goroutines. An Encoder does
// not perform any buffering of messages.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: wire.New(w)}
}

// Err returns the first error encountered by an Encoder when writing
// data to its underlying io.Writer.
func (enc *Encoder) Err() error {
	return enc.w.Err()
}

// BytesWritten returns the number of bytes written to the underlying
// io.Writer so far.
func (enc *Encoder) BytesWritten() int64 {
	return enc.w.BytesWritten()
}

// WriteStat writes the stat structure s to the underlying io.Writer.
// The leading size field is written from len(s) rather than copied
// from s, so the emitted record always frames correctly. The write
// is a single transaction; structures written by concurrent
// goroutines never interleave.
func (enc *Encoder) WriteStat(s Stat) error {
	if len(s) < minStatLen {
		return errShortStat
	}
	if len(s) > MaxStatLen {
		return errLongStat
	}
	var size [2]byte
	puint16(size[:0], uint16(len(s)-2))

	tx := enc.w.Tx()
	tx.Write(size[:])
	tx.Write(s[2:])
	return tx.Close()
}
