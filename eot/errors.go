package eot

import "fmt"

// ErrorKind classifies the structural decode failures of an EOT container.
// Every kind aborts decoding; there is no partial File on failure.
type ErrorKind int

const (
	// TruncatedHeader indicates the buffer ends before a mandatory header
	// region: the fixed 82-byte prefix, a name record, or the payload.
	TruncatedHeader ErrorKind = iota
	// InvalidMagic indicates the magic-number field does not hold 0x504C.
	// This is the strongest signal that the buffer is not an EOT file at all.
	InvalidMagic
	// SizeMismatch indicates the declared EOTSize disagrees with the
	// actual buffer length.
	SizeMismatch
	// UnknownVersion indicates a version field outside the published set.
	UnknownVersion
	// OddStringLength indicates a name record declaring an odd byte size;
	// UTF-16 string data always spans an even number of bytes.
	OddStringLength
	// InvalidStringEncoding indicates name-record bytes that are not valid
	// UTF-16 (e.g. unpaired surrogates). Names are externally visible
	// identifiers, so lossy replacement decoding is not acceptable.
	InvalidStringEncoding
	// PayloadSizeMismatch indicates the header+names region does not line
	// up with the declared payload size.
	PayloadSizeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case TruncatedHeader:
		return "TruncatedHeader"
	case InvalidMagic:
		return "InvalidMagic"
	case SizeMismatch:
		return "SizeMismatch"
	case UnknownVersion:
		return "UnknownVersion"
	case OddStringLength:
		return "OddStringLength"
	case InvalidStringEncoding:
		return "InvalidStringEncoding"
	case PayloadSizeMismatch:
		return "PayloadSizeMismatch"
	}
	return "UNKNOWN"
}

// DecodeError is a structural error encountered while decoding an EOT
// container. Kind is always set; the remaining fields are populated where
// they apply (Field for name records, Declared/Actual for size conflicts).
type DecodeError struct {
	Kind     ErrorKind
	Field    string // offending field or name record, if any
	Offset   int    // byte offset at which decoding stopped
	Declared uint32 // size/offset value the header claims
	Actual   uint32 // size/offset value the buffer yields
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case SizeMismatch:
		return fmt.Sprintf("EOT %s: declared %d, actual %d", e.Kind, e.Declared, e.Actual)
	case PayloadSizeMismatch:
		return fmt.Sprintf("EOT %s: expected payload at offset %d, names end at %d", e.Kind, e.Declared, e.Actual)
	case OddStringLength:
		return fmt.Sprintf("EOT %s: %s declares %d bytes at offset %d", e.Kind, e.Field, e.Declared, e.Offset)
	}
	if e.Field != "" {
		return fmt.Sprintf("EOT %s: %s at offset %d", e.Kind, e.Field, e.Offset)
	}
	return fmt.Sprintf("EOT %s at offset %d", e.Kind, e.Offset)
}

// Warning records a permissive-validation finding: a field that real-world
// EOT writers are known to get wrong (reserved words, zero paddings).
// Warnings never abort decoding; they are attached to the resulting File.
type Warning struct {
	Field  string // field the finding refers to
	Issue  string // human-readable description
	Offset int    // byte offset of the field
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Field, w.Offset, w.Issue)
}
