//go:build gofuzz
// +build gofuzz

package ninep

import (
	"bytes"
)

// Automated fuzz testing

func Fuzz(data []byte) int {
	s := NewScanner(bytes.NewReader(data))
	for s.Next() {
		if s.Stat() == nil {
			panic("s.Next returned true without a structure")
		}
		// a scanned structure must survive the strict checks
		// without panicking, although they may fail
		_ = s.Stat().Verify()
		return 1
	}
	return 0
}
