package ninep

// Sizes, in bytes, of the fixed-width integers used by the 9P wire
// format. All integers are unsigned and little-endian.
const (
	Uint8Size  = 1
	Uint16Size = 2
	Uint32Size = 4
	Uint64Size = 8
)

// QidLen is the length, in bytes, of an encoded Qid.
const QidLen = 13

// MaxDataLen is the maximum number of payload bytes in a
// length-prefixed byte string. Longer payloads cannot be represented
// in the 2-byte length field that precedes them.
const MaxDataLen = 1<<16 - 1

const (
	// statFixedSize counts the fixed-width portion of a stat
	// structure: size[2] type[2] dev[4] qid[13] mode[4] atime[4]
	// mtime[4] length[8]. The four variable-length strings follow.
	statFixedSize = 2 + 2 + 4 + 13 + 4 + 4 + 4 + 8

	// minStatLen is the size of a stat structure with four empty
	// strings.
	minStatLen = statFixedSize + (4 * 2)

	// MaxStatLen is the maximum size of a stat structure this
	// package will produce or accept: the fixed-width fields plus
	// a name, uid, gid, and muid of maximum length.
	MaxStatLen = minStatLen + MaxFilenameLen + (MaxUidLen * 3)

	// MaxFilenameLen is the maximum length of the name field in a
	// stat structure.
	MaxFilenameLen = 255

	// MaxUidLen is the maximum length of the uid, gid, and muid
	// fields in a stat structure.
	MaxUidLen = 45

	// MaxFileLen is the maximum value of the length field in a
	// stat structure; it must fit in a signed 64-bit integer.
	MaxFileLen = 1<<63 - 1
)

const (
	// DefaultBufSize is the buffer size used by NewScanner.
	DefaultBufSize = 8192

	// MinBufSize is the minimum amount of buffering a Scanner
	// needs to hold the largest acceptable stat structure.
	MinBufSize = MaxStatLen
)
