// Package wire provides write isolation and deferred error checking
// for producers that share an io.Writer.
package wire

import (
	"errors"
	"io"
	"sync"
)

var errClosedWrite = errors.New("Write on closed Tx")

// A Writer serializes writes to an underlying io.Writer. A record
// assembled from several Write calls can be grouped into a
// transaction, so that records from concurrent producers never
// interleave on the underlying writer.
//
// The first error encountered is sticky; once a write fails, all
// subsequent writes return the same error without touching the
// underlying writer.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	err error
	n   int64
}

// New returns a Writer that writes to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes p to the underlying writer as a single transaction.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.write(p)
}

// write sends p to the underlying writer. Callers must hold w.mu.
func (w *Writer) write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	w.err = err
	return n, err
}

// Err returns the first error encountered writing to the underlying
// writer.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// BytesWritten returns the number of bytes written to the underlying
// writer so far.
func (w *Writer) BytesWritten() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

// Tx begins a transaction spanning multiple Write calls. After Tx
// returns, all other writes to the Writer are blocked until the
// returned io.WriteCloser is closed. Close returns the first error
// encountered within the transaction, or any earlier sticky error.
// The returned io.WriteCloser can only be used from a single
// goroutine.
func (w *Writer) Tx() io.WriteCloser {
	w.mu.Lock()
	return &tx{w}
}

type tx struct {
	*Writer
}

func (t *tx) Write(p []byte) (int, error) {
	if t.Writer == nil {
		return 0, errClosedWrite
	}
	return t.Writer.write(p)
}

func (t *tx) Close() error {
	if t.Writer == nil {
		return errClosedWrite
	}
	err := t.Writer.err
	t.Writer.mu.Unlock()
	t.Writer = nil
	return err
}
