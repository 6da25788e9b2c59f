package ninep

// A Data is the payload of a length-prefixed byte string, the
// representation 9P uses for file names, user names, version
// strings, and other variable-length fields. On the wire, a byte
// string is a 2-byte little-endian length followed by that many
// bytes; a Data value holds only the payload, never the prefix.
type Data []byte

// NewData builds a Data value holding a copy of the bytes in s. If
// s is longer than MaxDataLen, its length cannot be represented in
// the 2-byte prefix, and NewData returns ErrLongData.
func NewData(s string) (Data, error) {
	if len(s) > MaxDataLen {
		return nil, ErrLongData
	}
	return Data(s), nil
}

// String returns the payload as a string.
func (d Data) String() string { return string(d) }

// DataSize returns the number of bytes the wire encoding of d
// occupies: two bytes of length prefix plus the payload.
func DataSize(d Data) int { return Uint16Size + len(d) }

// ReadData reads a length-prefixed byte string from the front of buf
// and returns its payload along with the unconsumed remainder of
// buf. The Data aliases buf rather than copying from it, and is only
// valid for as long as buf is.
func ReadData(buf []byte) (Data, []byte, error) {
	if len(buf) < Uint16Size {
		return nil, buf, &SizeError{Op: "read data length", Have: len(buf), Need: Uint16Size}
	}
	n := int(guint16(buf))
	if len(buf)-Uint16Size < n {
		return nil, buf, &SizeError{Op: "read data payload", Have: len(buf) - Uint16Size, Need: n}
	}
	end := Uint16Size + n
	return Data(buf[Uint16Size:end:end]), buf[end:], nil
}

// PutData writes the wire encoding of d, length prefix included, to
// the front of buf and returns the unused remainder of buf. If d is
// longer than MaxDataLen, PutData returns ErrLongData and writes
// nothing.
func PutData(buf []byte, d Data) ([]byte, error) {
	if len(d) > MaxDataLen {
		return buf, ErrLongData
	}
	if len(buf) < DataSize(d) {
		return buf, &SizeError{Op: "write data", Have: len(buf), Need: DataSize(d)}
	}
	b := puint16(buf[:0], uint16(len(d)))
	b = append(b, d...)
	return buf[len(b):], nil
}
