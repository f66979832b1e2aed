package eotquery

import "github.com/npillmayer/eotype/eot"

// EmbeddingLevel is the usage permission encoded in the low bits of a
// container's FSType field (EOT submission, section 4.1; same semantics as
// fsType in OpenType table OS/2).
type EmbeddingLevel uint16

const (
	Installable       EmbeddingLevel = 0x0000
	RestrictedLicense EmbeddingLevel = 0x0002
	PreviewPrint      EmbeddingLevel = 0x0004
	Editable          EmbeddingLevel = 0x0008
)

// Modifier bits of FSType, orthogonal to the embedding level.
const (
	fsTypeNoSubsetting uint16 = 0x0100
	fsTypeBitmapOnly   uint16 = 0x0200
)

func (l EmbeddingLevel) String() string {
	switch l {
	case Installable:
		return "installable"
	case RestrictedLicense:
		return "restricted license"
	case PreviewPrint:
		return "preview & print"
	case Editable:
		return "editable"
	}
	return "unknown"
}

// Embedding returns the usage permission of a container. If several
// permission bits are set, the most restrictive one wins (OS/2 fsType
// convention: restricted license dominates).
func Embedding(f *eot.File) EmbeddingLevel {
	if f == nil {
		return RestrictedLicense
	}
	switch {
	case f.FSType&uint16(RestrictedLicense) != 0:
		return RestrictedLicense
	case f.FSType&uint16(PreviewPrint) != 0:
		return PreviewPrint
	case f.FSType&uint16(Editable) != 0:
		return Editable
	}
	return Installable
}

// NoSubsetting reports whether the font may only be embedded in full.
func NoSubsetting(f *eot.File) bool {
	return f != nil && f.FSType&fsTypeNoSubsetting != 0
}

// BitmapOnly reports whether only bitmap embedding is permitted.
func BitmapOnly(f *eot.File) bool {
	return f != nil && f.FSType&fsTypeBitmapOnly != 0
}
