package ninep

import "fmt"

// A QidType is the high 8 bits of a file's mode, describing what
// kind of file it is.
type QidType uint8

const (
	QTDIR    QidType = 0x80 // directories
	QTAPPEND QidType = 0x40 // append only files
	QTEXCL   QidType = 0x20 // exclusive use files
	QTMOUNT  QidType = 0x10 // mounted channel
	QTAUTH   QidType = 0x08 // authentication file
	QTTMP    QidType = 0x04 // non-backed-up file
	QTFILE   QidType = 0x00 // plain file
)

// A Qid represents a server's unique identification of a file. Two
// files on the same server hierarchy are the same if and only if
// their qids are the same. A Qid is an opaque 13-byte value; use
// NewQid or ReadQid to obtain one, and its methods to access the
// fields within.
type Qid []byte

// NewQid writes a new Qid with the given type, version, and path to
// the first QidLen bytes of buf. It returns the Qid along with the
// unused remainder of buf.
func NewQid(buf []byte, qtype uint8, version uint32, path uint64) (Qid, []byte, error) {
	if len(buf) < QidLen {
		return nil, buf, &SizeError{Op: "new qid", Have: len(buf), Need: QidLen}
	}
	b := buf[:0]
	b = puint8(b, qtype)
	b = puint32(b, version)
	b = puint64(b, path)
	return Qid(b), buf[len(b):], nil
}

// ReadQid reads a Qid from the front of buf and returns it along
// with the unconsumed remainder of buf. The Qid aliases buf rather
// than copying from it, and is only valid for as long as buf is.
func ReadQid(buf []byte) (Qid, []byte, error) {
	if len(buf) < QidLen {
		return nil, buf, &SizeError{Op: "read qid", Have: len(buf), Need: QidLen}
	}
	return Qid(buf[:QidLen:QidLen]), buf[QidLen:], nil
}

// PutQid copies the encoded Qid q to the front of buf and returns
// the unused remainder of buf. If q is not exactly QidLen bytes
// long, PutQid returns ErrBadQid and writes nothing.
func PutQid(buf []byte, q Qid) ([]byte, error) {
	if len(q) != QidLen {
		return buf, ErrBadQid
	}
	if len(buf) < QidLen {
		return buf, &SizeError{Op: "write qid", Have: len(buf), Need: QidLen}
	}
	copy(buf, q)
	return buf[QidLen:], nil
}

// Type returns the type of the file this Qid describes.
func (q Qid) Type() QidType { return QidType(q[0]) }

// Version returns the revision number of the file. A file's version
// is incremented every time it is modified.
func (q Qid) Version() uint32 { return guint32(q[1:5]) }

// Path is an integer unique to the file on this server hierarchy.
func (q Qid) Path() uint64 { return guint64(q[5:13]) }

func (q Qid) String() string {
	return fmt.Sprintf("type=%d ver=%d path=%x", q.Type(), q.Version(), q.Path())
}
