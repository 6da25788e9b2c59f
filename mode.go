package ninep

import "os"

// File modes
const (
	DMDIR    = 0x80000000 // mode bit for directories
	DMAPPEND = 0x40000000 // mode bit for append only files
	DMEXCL   = 0x20000000 // mode bit for exclusive use files
	DMMOUNT  = 0x10000000 // mode bit for mounted channel
	DMAUTH   = 0x08000000 // mode bit for authentication file
	DMTMP    = 0x04000000 // mode bit for non-backed-up file
	DMREAD   = 0x4        // mode bit for read permission
	DMWRITE  = 0x2        // mode bit for write permission
	DMEXEC   = 0x1        // mode bit for execute permission
)

// ModeOS converts a 9P mode mask to an os.FileMode.
func ModeOS(perm uint32) os.FileMode {
	var mode os.FileMode
	if perm&DMDIR != 0 {
		mode = os.ModeDir
	}
	if perm&DMAPPEND != 0 {
		mode |= os.ModeAppend
	}
	if perm&DMEXCL != 0 {
		mode |= os.ModeExclusive
	}
	if perm&DMTMP != 0 {
		mode |= os.ModeTemporary
	}
	mode |= (os.FileMode(perm) & os.ModePerm)
	return mode
}

// Mode9P converts an os.FileMode to a 9P mode mask
func Mode9P(mode os.FileMode) uint32 {
	var perm uint32
	if mode&os.ModeDir != 0 {
		perm |= DMDIR
	}
	if mode&os.ModeAppend != 0 {
		perm |= DMAPPEND
	}
	if mode&os.ModeExclusive != 0 {
		perm |= DMEXCL
	}
	if mode&os.ModeTemporary != 0 {
		perm |= DMTMP
	}
	return perm | uint32(mode&os.ModePerm)
}

// QidTypeOf selects the first byte of a 9P mode mask,
// and is suitable for use in a Qid's type field.
func QidTypeOf(mode uint32) QidType {
	return QidType(mode >> 24)
}
