package eot

// Version is the EOT container version field. It selects which trailing
// fields are present after the four mandatory name records.
type Version uint32

// Known EOT container versions (EOT submission, section 3).
const (
	Version1  Version = 0x00010000 // names only
	Version21 Version = 0x00020001 // adds root string
	Version22 Version = 0x00020002 // adds signature and EUDC fields
)

// KnownVersion reports whether v is one of the published container versions.
func KnownVersion(v Version) bool {
	switch v {
	case Version1, Version21, Version22:
		return true
	}
	return false
}

// Extended reports whether v carries the extended trailing fields
// (root string, and possibly a signature block).
func (v Version) Extended() bool {
	return v > Version1
}

func (v Version) String() string {
	switch v {
	case Version1:
		return "1.0"
	case Version21:
		return "2.1"
	case Version22:
		return "2.2"
	}
	return "unknown"
}

// ProcessingFlag is a bit in the header's flags word (EOT submission,
// section 4.2). Only these low-order processing bits are meaningful;
// all other bits are reserved and ignored on read.
type ProcessingFlag uint32

const (
	FlagSubset                   ProcessingFlag = 0x00000001
	FlagTTCompressed             ProcessingFlag = 0x00000004 // MicroType Express, possibly patented
	FlagFailIfVariationSimulated ProcessingFlag = 0x00000010
	FlagEmbedEUDC                ProcessingFlag = 0x00000020
	FlagValidationTests          ProcessingFlag = 0x00000040
	FlagWebObject                ProcessingFlag = 0x00000080
	FlagXOREncryptData           ProcessingFlag = 0x10000000
)

// MagicNumber is the fixed corruption-check constant every EOT header carries.
const MagicNumber = 0x504C

// XOR keys defined by the EOT submission (sections 4.3.2 and 4.4). This
// package does not apply either transform; the constants are exported for
// clients that do.
const (
	RootStringChecksumXORKey uint32 = 0x50475342
	FontDataXORKey           byte   = 0x50
)

// File is a decoded EOT container. It is constructed by Decode and immutable
// afterwards. Scalar fields mirror the header tables of the EOT submission,
// section 3; reserved words are not retained.
//
// A File may alias the byte slice it was decoded from (see FontData), so the
// input buffer must not be mutated while the File is in use.
type File struct {
	EOTSize            uint32
	FontDataSize       uint32
	Version            Version
	Flags              uint32
	FontPANOSE         [10]byte
	Charset            uint8
	Italic             uint8
	Weight             uint32
	FSType             uint16 // embedding restrictions, copied verbatim
	UnicodeRange       [4]uint32
	CodePageRange      [2]uint32
	ChecksumAdjustment uint32

	FamilyName  string
	StyleName   string
	VersionName string
	FullName    string

	// Present for extended container versions only.
	RootString Option[string]
	Signature  Option[[]byte]

	fontData FontData
	warnings []Warning
}

// FontData returns the embedded font payload descriptor.
func (f *File) FontData() FontData {
	return f.fontData
}

// Warnings returns the permissive-validation findings collected while
// decoding. An empty slice means the container was formally clean.
func (f *File) Warnings() []Warning {
	if f.warnings == nil {
		return []Warning{}
	}
	return f.warnings
}

// HasWarnings reports whether any permissive violations were recorded.
func (f *File) HasWarnings() bool {
	return len(f.warnings) > 0
}

// FontData is the embedded font payload of an EOT container: either the raw
// SFNT bytes, or a tag telling why the payload cannot be used (compressed or
// encrypted per the header's processing flags). Clients must check the tag
// before interpreting the bytes.
type FontData struct {
	data   []byte // view into the decoded buffer, not a copy
	reason string // non-empty iff the payload is unsupported
}

// Raw returns the payload bytes and true if the payload is plain SFNT data.
// The returned slice aliases the buffer passed to Decode.
func (fd FontData) Raw() ([]byte, bool) {
	if fd.reason != "" {
		return nil, false
	}
	return fd.data, true
}

// Unsupported returns a reason and true if the payload is compressed or
// encrypted and therefore not usable as-is.
func (fd FontData) Unsupported() (string, bool) {
	return fd.reason, fd.reason != ""
}

// Size returns the payload length in bytes.
func (fd FontData) Size() int {
	return len(fd.data)
}

// Materialize returns a copy of the payload bytes, detached from the buffer
// the container was decoded from. The copy is made on request only; callers
// that can guarantee the input buffer's lifetime should prefer Raw.
func (fd FontData) Materialize() []byte {
	out := make([]byte, len(fd.data))
	copy(out, fd.data)
	return out
}
