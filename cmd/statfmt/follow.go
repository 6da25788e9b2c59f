package main

import (
	"io"
	"time"

	"aqwari.net/retry"
)

// A followReader keeps a scan alive at the end of a growing file.
// Reads that land on io.EOF wait and retry instead of ending the
// stream, so entries appended to the file show up as they arrive.
// The wait between polls grows exponentially up to a ceiling, and
// resets as soon as data arrives.
//
// Following is only useful on readers that can return data after
// io.EOF, such as a regular file another process appends to.
type followReader struct {
	r    io.Reader
	wait retry.Strategy
	try  int
}

func (f *followReader) Read(p []byte) (int, error) {
	for {
		n, err := f.r.Read(p)
		if n > 0 || err != io.EOF {
			f.try = 0
			return n, err
		}
		time.Sleep(f.wait(f.try))
		f.try++
	}
}
