package ninep

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestUintProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("uint16 survives a round trip", prop.ForAll(
		func(v uint16) string {
			buf := make([]byte, Uint16Size)
			rest, err := PutUint16(buf, v)
			if err != nil {
				return fmt.Sprintf("put: %v", err)
			}
			if len(rest) != 0 {
				return fmt.Sprintf("put left %d bytes in an exact buffer", len(rest))
			}
			got, rest, err := ReadUint16(buf)
			if err != nil {
				return fmt.Sprintf("read: %v", err)
			}
			if got != v {
				return fmt.Sprintf("wrote %#x, read %#x", v, got)
			}
			if len(rest) != 0 {
				return fmt.Sprintf("read left %d bytes", len(rest))
			}
			return ""
		},
		gen.UInt16(),
	))

	properties.Property("uint32 survives a round trip", prop.ForAll(
		func(v uint32) string {
			buf := make([]byte, Uint32Size)
			if _, err := PutUint32(buf, v); err != nil {
				return fmt.Sprintf("put: %v", err)
			}
			got, _, err := ReadUint32(buf)
			if err != nil {
				return fmt.Sprintf("read: %v", err)
			}
			if got != v {
				return fmt.Sprintf("wrote %#x, read %#x", v, got)
			}
			return ""
		},
		gen.UInt32(),
	))

	properties.Property("uint64 survives a round trip", prop.ForAll(
		func(v uint64) string {
			buf := make([]byte, Uint64Size)
			if _, err := PutUint64(buf, v); err != nil {
				return fmt.Sprintf("put: %v", err)
			}
			got, _, err := ReadUint64(buf)
			if err != nil {
				return fmt.Sprintf("read: %v", err)
			}
			if got != v {
				return fmt.Sprintf("wrote %#x, read %#x", v, got)
			}
			return ""
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestDataProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("data survives a round trip with any remainder", prop.ForAll(
		func(payload string, extra uint8) string {
			d, err := NewData(payload)
			if err != nil {
				return fmt.Sprintf("new: %v", err)
			}
			buf := make([]byte, DataSize(d)+int(extra))
			rest, err := PutData(buf, d)
			if err != nil {
				return fmt.Sprintf("put: %v", err)
			}
			if len(rest) != int(extra) {
				return fmt.Sprintf("put consumed %d bytes, want %d",
					len(buf)-len(rest), DataSize(d))
			}
			got, rest, err := ReadData(buf)
			if err != nil {
				return fmt.Sprintf("read: %v", err)
			}
			if got.String() != payload {
				return fmt.Sprintf("wrote %q, read %q", payload, got)
			}
			if len(rest) != int(extra) {
				return fmt.Sprintf("read consumed %d bytes, want %d",
					len(buf)-len(rest), DataSize(d))
			}
			return ""
		},
		gen.AnyString(),
		gen.UInt8(),
	))

	properties.Property("reads never write to the source buffer", prop.ForAll(
		func(payload string) string {
			d, _ := NewData(payload)
			buf := make([]byte, DataSize(d))
			if _, err := PutData(buf, d); err != nil {
				return fmt.Sprintf("put: %v", err)
			}
			before := append([]byte{}, buf...)
			if _, _, err := ReadData(buf); err != nil {
				return fmt.Sprintf("read: %v", err)
			}
			if !bytes.Equal(before, buf) {
				return "ReadData modified its input"
			}
			return ""
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestStatProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	clip := func(s string, max int) string {
		if len(s) > max {
			return s[:max]
		}
		return s
	}

	properties.Property("stat survives a round trip", prop.ForAll(
		func(name, uid, gid, muid string, mode, atime, mtime uint32, length uint64) string {
			name = clip(name, MaxFilenameLen)
			uid = clip(uid, MaxUidLen)
			gid = clip(gid, MaxUidLen)
			muid = clip(muid, MaxUidLen)
			length &= MaxFileLen

			buf := make([]byte, StatSize(name, uid, gid, muid))
			s, rest, err := NewStat(buf, name, uid, gid, muid)
			if err != nil {
				return fmt.Sprintf("new: %v", err)
			}
			if len(rest) != 0 {
				return fmt.Sprintf("new left %d bytes in an exact buffer", len(rest))
			}
			s.SetMode(mode)
			s.SetAtime(atime)
			s.SetMtime(mtime)
			s.SetLength(int64(length))

			got, rest, err := ReadStat(buf)
			if err != nil {
				return fmt.Sprintf("read: %v", err)
			}
			if len(rest) != 0 {
				return fmt.Sprintf("read left %d bytes", len(rest))
			}
			if err := got.Verify(); err != nil {
				return fmt.Sprintf("verify: %v", err)
			}
			switch {
			case string(got.Name()) != name:
				return fmt.Sprintf("name %q, want %q", got.Name(), name)
			case string(got.Uid()) != uid:
				return fmt.Sprintf("uid %q, want %q", got.Uid(), uid)
			case string(got.Gid()) != gid:
				return fmt.Sprintf("gid %q, want %q", got.Gid(), gid)
			case string(got.Muid()) != muid:
				return fmt.Sprintf("muid %q, want %q", got.Muid(), muid)
			case got.Mode() != mode:
				return fmt.Sprintf("mode %#o, want %#o", got.Mode(), mode)
			case got.Atime() != atime || got.Mtime() != mtime:
				return "times do not match"
			case got.Length() != int64(length):
				return fmt.Sprintf("length %d, want %d", got.Length(), length)
			}
			return ""
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.UInt32(),
		gen.UInt32(),
		gen.UInt32(),
		gen.UInt64(),
	))

	properties.Property("consumption is monotonic across a stream", prop.ForAll(
		func(names []string) string {
			var stream bytes.Buffer
			enc := NewEncoder(&stream)
			statbuf := make([]byte, MaxStatLen)
			for _, name := range names {
				s, _, err := NewStat(statbuf, clip(name, MaxFilenameLen), "g", "g", "")
				if err != nil {
					return fmt.Sprintf("new: %v", err)
				}
				if err := enc.WriteStat(s); err != nil {
					return fmt.Sprintf("write: %v", err)
				}
			}

			buf := stream.Bytes()
			for i := 0; len(buf) > 0; i++ {
				before := len(buf)
				var err error
				if _, buf, err = ReadStat(buf); err != nil {
					return fmt.Sprintf("entry %d: %v", i, err)
				}
				if len(buf) >= before {
					return fmt.Sprintf("entry %d: no progress (%d -> %d bytes)",
						i, before, len(buf))
				}
			}
			return ""
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
