package ninep

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// The Stat structure describes a directory entry. It is contained in
// Rstat and Twstat messages. Tread requests on directories return
// a Stat structure for each directory entry. A Stat holds the full
// encoded form, from the leading size field through the muid string;
// use NewStat or ReadStat to obtain one.
type Stat []byte

// StatSize returns the number of bytes an encoded stat structure
// with the given strings occupies, leading size field included.
func StatSize(name, uid, gid, muid string) int {
	return statFixedSize + len(name) + len(uid) + len(gid) + len(muid) + (4 * 2)
}

// NewStat writes a new Stat structure with the given strings to the
// front of buf. It returns the Stat along with the unused remainder
// of buf. The fixed-width fields of the new Stat are zero; use the
// Set methods to fill them in.
func NewStat(buf []byte, name, uid, gid, muid string) (Stat, []byte, error) {
	if len(name) > MaxFilenameLen {
		return nil, buf, errLongFilename
	}
	if len(uid) > MaxUidLen || len(gid) > MaxUidLen || len(muid) > MaxUidLen {
		return nil, buf, errLongUsername
	}
	size := StatSize(name, uid, gid, muid)
	if len(buf) < size {
		return nil, buf, &SizeError{Op: "new stat", Have: len(buf), Need: size}
	}
	b := buf[:statFixedSize]
	for i := range b {
		b[i] = 0
	}
	puint16(buf[:0], uint16(size-2))
	b = pstring(b, name, uid, gid, muid)
	return Stat(b), buf[len(b):], nil
}

// ReadStat reads a Stat structure from the front of buf and returns
// it along with the unconsumed remainder of buf. Each field is
// bounds-checked in wire order, and the first field that does not
// fit fails the whole read, leaving buf unconsumed. The leading size
// field is read but not compared against the fields that follow it;
// use Verify to check that. The Stat aliases buf rather than copying
// from it, and is only valid for as long as buf is.
func ReadStat(buf []byte) (Stat, []byte, error) {
	rest := buf
	var err error
	if _, rest, err = ReadUint16(rest); err != nil { // size
		return nil, buf, err
	}
	if _, rest, err = ReadUint16(rest); err != nil { // type
		return nil, buf, err
	}
	if _, rest, err = ReadUint32(rest); err != nil { // dev
		return nil, buf, err
	}
	if _, rest, err = ReadQid(rest); err != nil {
		return nil, buf, err
	}
	for i := 0; i < 3; i++ { // mode, atime, mtime
		if _, rest, err = ReadUint32(rest); err != nil {
			return nil, buf, err
		}
	}
	if _, rest, err = ReadUint64(rest); err != nil { // length
		return nil, buf, err
	}
	for i := 0; i < 4; i++ { // name, uid, gid, muid
		if _, rest, err = ReadData(rest); err != nil {
			return nil, buf, err
		}
	}
	n := len(buf) - len(rest)
	return Stat(buf[:n:n]), rest, nil
}

// PutStat copies the encoded stat structure s to the front of buf
// and returns the unused remainder of buf. The leading size field of
// the copy is recomputed from len(s), so a tampered-with size field
// does not survive a write. Stats smaller than the minimum or larger
// than MaxStatLen are rejected.
func PutStat(buf []byte, s Stat) ([]byte, error) {
	if len(s) < minStatLen {
		return buf, errShortStat
	}
	if len(s) > MaxStatLen {
		return buf, errLongStat
	}
	if len(buf) < len(s) {
		return buf, &SizeError{Op: "write stat", Have: len(buf), Need: len(s)}
	}
	copy(buf, s)
	puint16(buf[:0], uint16(len(s)-2))
	return buf[len(s):], nil
}

// Size returns the length (in bytes) of the stat structure, minus
// the two-byte size.
func (s Stat) Size() uint16 { return guint16(s[0:2]) }

// The 2-byte type field contains implementation-specific data
// that is outside the scope of the 9P protocol.
func (s Stat) Type() uint16 { return guint16(s[2:4]) }

// The 4-byte dev field contains implementation-specific data
// that is outside the scope of the 9P protocol. In Plan 9, it holds
// an identifier for the block device that stores the file.
func (s Stat) Dev() uint32 { return guint32(s[4:8]) }

// Qid returns the unique identifier of the file.
func (s Stat) Qid() Qid { return Qid(s[8:21]) }

// Mode contains the permissions and flags set for the file.
// Permissions follow the unix model; the 3 least-significant
// 3-bit triads describe read, write, and execute access for
// owners, group members, and other users, respectively.
func (s Stat) Mode() uint32 { return guint32(s[21:25]) }

// Atime returns the last access time for the file, in seconds since the epoch.
func (s Stat) Atime() uint32 { return guint32(s[25:29]) }

// Mtime returns the last time the file was modified, in seconds since the epoch.
func (s Stat) Mtime() uint32 { return guint32(s[29:33]) }

// Length returns the length of the file in bytes.
func (s Stat) Length() int64 { return int64(guint64(s[33:41])) }

// Name returns the name of the file.
func (s Stat) Name() []byte { return s.nthField(41, 0) }

// Uid returns the name of the owner of the file.
func (s Stat) Uid() []byte { return s.nthField(41, 1) }

// Gid returns the group of the file.
func (s Stat) Gid() []byte { return s.nthField(41, 2) }

// Muid returns the name of the user who last modified the file
func (s Stat) Muid() []byte { return s.nthField(41, 3) }

// SetType sets the type field of the stat structure.
func (s Stat) SetType(t uint16) { binary.LittleEndian.PutUint16(s[2:4], t) }

// SetDev sets the dev field of the stat structure.
func (s Stat) SetDev(d uint32) { binary.LittleEndian.PutUint32(s[4:8], d) }

// SetQid sets the qid field of the stat structure. The Qid q must be
// exactly QidLen bytes long.
func (s Stat) SetQid(q Qid) { pqid(s[8:8], q) }

// SetMode sets the mode field of the stat structure.
func (s Stat) SetMode(m uint32) { binary.LittleEndian.PutUint32(s[21:25], m) }

// SetAtime sets the atime field of the stat structure.
func (s Stat) SetAtime(t uint32) { binary.LittleEndian.PutUint32(s[25:29], t) }

// SetMtime sets the mtime field of the stat structure.
func (s Stat) SetMtime(t uint32) { binary.LittleEndian.PutUint32(s[29:33], t) }

// SetLength sets the length field of the stat structure.
func (s Stat) SetLength(n int64) { binary.LittleEndian.PutUint64(s[33:41], uint64(n)) }

func (s Stat) String() string {
	return fmt.Sprintf("type=%x dev=%x qid=%q mode=%o atime=%d mtime=%d "+
		"length=%d name=%q uid=%q gid=%q muid=%q", s.Type(), s.Dev(), s.Qid(),
		s.Mode(), s.Atime(), s.Mtime(), s.Length(), s.Name(), s.Uid(),
		s.Gid(), s.Muid())
}

// Verify ensures that s is valid and safe to use as a Stat. This
// *must* be called on stat structures cast directly from untrusted
// input, otherwise there is no guarantee that a bad actor threw in
// some illegal sizes or strings. Stats obtained from ReadStat or a
// Scanner have already had their structure checked; Verify adds the
// stricter checks, requiring the size field to agree with the
// structure's length, string fields to respect the protocol limits,
// and strings to be valid utf8.
func (s Stat) Verify() error {
	// size[2] type[2] dev[4] qid[13] mode[4] atime[4] mtime[4] length[8] name[s] uid[s] gid[s] muid[s]
	if len(s) < minStatLen {
		return errShortStat
	} else if len(s) > MaxStatLen {
		return errLongStat
	}
	if int(s.Size()) != len(s)-2 {
		return errStatSize
	}
	if length := guint64(s[33:41]); length > MaxFileLen {
		return errLongLength
	}
	rest := []byte(s[statFixedSize:])
	for i := 0; i < 4; i++ {
		field, r, err := ReadData(rest)
		if err != nil {
			return errStatSize
		}
		if i == 0 && len(field) > MaxFilenameLen {
			return errLongFilename
		} else if i > 0 && len(field) > MaxUidLen {
			return errLongUsername
		}
		if !utf8.Valid(field) {
			return errInvalidUTF8
		}
		rest = r
	}
	if len(rest) != 0 {
		return errStatSize
	}
	return nil
}

// nthField returns the n'th length-prefixed string in s, starting
// from offset. It must only be called on a Stat that has already
// been bounds-checked.
func (s Stat) nthField(offset, n int) []byte {
	size := int(guint16(s[offset : offset+2]))
	for i := 0; i < n; i++ {
		offset += size + 2
		size = int(guint16(s[offset : offset+2]))
	}
	return s[offset+2 : offset+2+size]
}
