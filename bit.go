package ninep

import (
	"encoding/binary"
	"math"
)

// Shorthand for parsing numbers
var (
	guint16 = binary.LittleEndian.Uint16
	guint32 = binary.LittleEndian.Uint32
	guint64 = binary.LittleEndian.Uint64
)

// ReadUint8 reads a 1-byte unsigned integer from the front of buf
// and returns it along with the unconsumed remainder of buf.
func ReadUint8(buf []byte) (uint8, []byte, error) {
	if len(buf) < Uint8Size {
		return 0, buf, &SizeError{Op: "read uint8", Have: len(buf), Need: Uint8Size}
	}
	return buf[0], buf[Uint8Size:], nil
}

// ReadUint16 reads a 2-byte little-endian unsigned integer from the
// front of buf and returns it along with the unconsumed remainder of
// buf.
func ReadUint16(buf []byte) (uint16, []byte, error) {
	if len(buf) < Uint16Size {
		return 0, buf, &SizeError{Op: "read uint16", Have: len(buf), Need: Uint16Size}
	}
	return guint16(buf), buf[Uint16Size:], nil
}

// ReadUint32 reads a 4-byte little-endian unsigned integer from the
// front of buf and returns it along with the unconsumed remainder of
// buf.
func ReadUint32(buf []byte) (uint32, []byte, error) {
	if len(buf) < Uint32Size {
		return 0, buf, &SizeError{Op: "read uint32", Have: len(buf), Need: Uint32Size}
	}
	return guint32(buf), buf[Uint32Size:], nil
}

// ReadUint64 reads an 8-byte little-endian unsigned integer from the
// front of buf and returns it along with the unconsumed remainder of
// buf.
func ReadUint64(buf []byte) (uint64, []byte, error) {
	if len(buf) < Uint64Size {
		return 0, buf, &SizeError{Op: "read uint64", Have: len(buf), Need: Uint64Size}
	}
	return guint64(buf), buf[Uint64Size:], nil
}

// PutUint8 writes v to the front of buf and returns the unused
// remainder of buf.
func PutUint8(buf []byte, v uint8) ([]byte, error) {
	if len(buf) < Uint8Size {
		return buf, &SizeError{Op: "write uint8", Have: len(buf), Need: Uint8Size}
	}
	buf[0] = v
	return buf[Uint8Size:], nil
}

// PutUint16 writes v to the front of buf in little-endian byte order
// and returns the unused remainder of buf.
func PutUint16(buf []byte, v uint16) ([]byte, error) {
	if len(buf) < Uint16Size {
		return buf, &SizeError{Op: "write uint16", Have: len(buf), Need: Uint16Size}
	}
	binary.LittleEndian.PutUint16(buf, v)
	return buf[Uint16Size:], nil
}

// PutUint32 writes v to the front of buf in little-endian byte order
// and returns the unused remainder of buf.
func PutUint32(buf []byte, v uint32) ([]byte, error) {
	if len(buf) < Uint32Size {
		return buf, &SizeError{Op: "write uint32", Have: len(buf), Need: Uint32Size}
	}
	binary.LittleEndian.PutUint32(buf, v)
	return buf[Uint32Size:], nil
}

// PutUint64 writes v to the front of buf in little-endian byte order
// and returns the unused remainder of buf.
func PutUint64(buf []byte, v uint64) ([]byte, error) {
	if len(buf) < Uint64Size {
		return buf, &SizeError{Op: "write uint64", Have: len(buf), Need: Uint64Size}
	}
	binary.LittleEndian.PutUint64(buf, v)
	return buf[Uint64Size:], nil
}

// bit-packing functions. The p* functions append a value to b, which
// must have enough capacity for it, and return the extended slice.
// They are for use on buffers that have already passed a bounds
// check.

func puint8(b []byte, v uint8) []byte {
	b = b[:len(b)+1]
	b[len(b)-1] = v
	return b
}

func puint16(b []byte, v uint16) []byte {
	binary.LittleEndian.PutUint16(b[len(b):len(b)+2], v)
	return b[:len(b)+2]
}

func puint32(b []byte, v ...uint32) []byte {
	for _, vv := range v {
		binary.LittleEndian.PutUint32(b[len(b):len(b)+4], vv)
		b = b[:len(b)+4]
	}
	return b
}

func puint64(b []byte, v uint64) []byte {
	binary.LittleEndian.PutUint64(b[len(b):len(b)+8], v)
	return b[:len(b)+8]
}

// pstring appends length-prefixed strings to b.
func pstring(b []byte, s ...string) []byte {
	for _, ss := range s {
		if len(ss) > math.MaxUint16 {
			panic(ErrLongData)
		}
		b = puint16(b, uint16(len(ss)))
		b = append(b, ss...)
	}
	return b
}

// pqid appends an encoded Qid to b.
func pqid(b []byte, q Qid) []byte {
	copy(b[len(b):len(b)+QidLen], q[:QidLen])
	return b[:len(b)+QidLen]
}
