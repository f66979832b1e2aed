package eot

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Byte layout of the fixed header prefix (EOT submission, section 3).
// Offsets are from the start of the container; all values little-endian.
const (
	offEOTSize            = 0
	offFontDataSize       = 4
	offVersion            = 8
	offFlags              = 12
	offFontPANOSE         = 16
	offCharset            = 26
	offItalic             = 27
	offWeight             = 28
	offFSType             = 32
	offMagicNumber        = 34
	offUnicodeRange       = 36
	offCodePageRange      = 52
	offChecksumAdjustment = 60
	offReserved           = 64
	offPadding1           = 80

	fixedHeaderSize = 82 // through padding1, which precedes the family name
)

// Decode parses an EOT container from a byte slice. The slice must hold the
// complete file; Decode performs no I/O and keeps no state between calls, so
// concurrent calls on independent buffers are safe.
//
// On success the returned File may alias data (see FontData.Raw), and data is
// assumed immutable while the File remains in use. Structural corruption
// aborts decoding with a *DecodeError; permissive violations (nonzero
// reserved words or paddings) are collected as warnings on the File instead.
func Decode(data []byte) (*File, error) {
	if len(data) < fixedHeaderSize {
		return nil, &DecodeError{Kind: TruncatedHeader, Field: "fixed_header", Offset: len(data)}
	}
	f := &File{
		EOTSize:            u32(data[offEOTSize:]),
		FontDataSize:       u32(data[offFontDataSize:]),
		Version:            Version(u32(data[offVersion:])),
		Flags:              u32(data[offFlags:]),
		Charset:            data[offCharset],
		Italic:             data[offItalic],
		Weight:             u32(data[offWeight:]),
		FSType:             u16(data[offFSType:]),
		ChecksumAdjustment: u32(data[offChecksumAdjustment:]),
	}
	copy(f.FontPANOSE[:], data[offFontPANOSE:offFontPANOSE+10])
	for i := range f.UnicodeRange {
		f.UnicodeRange[i] = u32(data[offUnicodeRange+4*i:])
	}
	for i := range f.CodePageRange {
		f.CodePageRange[i] = u32(data[offCodePageRange+4*i:])
	}
	tracer().Debugf("EOT header: version %s, size %d, font data %d bytes",
		f.Version, f.EOTSize, f.FontDataSize)

	if magic := u16(data[offMagicNumber:]); magic != MagicNumber {
		return nil, &DecodeError{Kind: InvalidMagic, Offset: offMagicNumber, Actual: uint32(magic)}
	}
	if int64(f.EOTSize) != int64(len(data)) {
		return nil, &DecodeError{Kind: SizeMismatch, Declared: f.EOTSize, Actual: uint32(len(data))}
	}
	if !KnownVersion(f.Version) {
		return nil, &DecodeError{Kind: UnknownVersion, Offset: offVersion, Actual: uint32(f.Version)}
	}
	// Reserved words must be ignored on read; legacy writers fill them with
	// junk, so a nonzero value is only worth a warning.
	for i := 0; i < 4; i++ {
		off := offReserved + 4*i
		if v := u32(data[off:]); v != 0 {
			f.warn(fmt.Sprintf("reserved%d", i+1), off, fmt.Sprintf("nonzero reserved value 0x%08x", v))
		}
	}

	// padding1 at offset 80 doubles as the first name record's padding.
	c := &cursor{data: data, pos: offPadding1}
	var derr *DecodeError
	if f.FamilyName, derr = f.nameRecord(c, "family_name"); derr != nil {
		return nil, derr
	}
	if f.StyleName, derr = f.nameRecord(c, "style_name"); derr != nil {
		return nil, derr
	}
	if f.VersionName, derr = f.nameRecord(c, "version_name"); derr != nil {
		return nil, derr
	}
	if f.FullName, derr = f.nameRecord(c, "full_name"); derr != nil {
		return nil, derr
	}

	if f.Version.Extended() {
		var root string
		if root, derr = f.nameRecord(c, "root_string"); derr != nil {
			return nil, derr
		}
		f.RootString = Some(root)
		if root != "" {
			size, derr := c.u16("signature_size")
			if derr != nil {
				return nil, derr
			}
			sig, derr := c.bytes(int(size), "signature")
			if derr != nil {
				return nil, derr
			}
			f.Signature = Some(append([]byte(nil), sig...))
		}
	}

	// The payload is the trailing FontDataSize bytes; the names region must
	// butt up against it exactly.
	expected := int64(f.EOTSize) - int64(f.FontDataSize)
	if expected != int64(c.pos) {
		e := &DecodeError{Kind: PayloadSizeMismatch, Offset: c.pos, Actual: uint32(c.pos)}
		if expected >= 0 {
			e.Declared = uint32(expected)
		}
		return nil, e
	}
	f.fontData = FontData{data: data[c.pos:]}
	flags := ProcessingFlag(f.Flags)
	switch {
	case flags&FlagTTCompressed != 0:
		f.fontData.reason = "MicroType Express compressed font data"
	case flags&FlagXOREncryptData != 0:
		f.fontData.reason = "XOR-encrypted font data"
	}
	if reason, unsupported := f.fontData.Unsupported(); unsupported {
		tracer().Infof("EOT payload not usable: %s", reason)
	}
	return f, nil
}

// nameRecord reads one padding+size+data triple and decodes the string data
// as UTF-16LE. Nonzero padding degrades to a warning; an odd size or invalid
// UTF-16 aborts the decode.
func (f *File) nameRecord(c *cursor, field string) (string, *DecodeError) {
	pad, derr := c.u16(field)
	if derr != nil {
		return "", derr
	}
	if pad != 0 {
		f.warn(field, c.pos-2, fmt.Sprintf("nonzero padding 0x%04x", pad))
	}
	size, derr := c.u16(field)
	if derr != nil {
		return "", derr
	}
	if size%2 != 0 {
		return "", &DecodeError{Kind: OddStringLength, Field: field, Offset: c.pos - 2, Declared: uint32(size)}
	}
	raw, derr := c.bytes(int(size), field)
	if derr != nil {
		return "", derr
	}
	return decodeUTF16(raw, field, c.pos-int(size))
}

func (f *File) warn(field string, offset int, issue string) {
	tracer().Debugf("EOT %s: %s", field, issue)
	f.warnings = append(f.warnings, Warning{Field: field, Issue: issue, Offset: offset})
}

// decodeUTF16 converts UTF-16LE bytes to a string. The x/text decoder
// substitutes U+FFFD for broken sequences, which would silently corrupt
// externally visible font names, so unpaired surrogates are rejected first.
func decodeUTF16(b []byte, field string, offset int) (string, *DecodeError) {
	for i := 0; i < len(b); i += 2 {
		unit := u16(b[i:])
		switch {
		case unit >= 0xD800 && unit <= 0xDBFF:
			if i+4 > len(b) || u16(b[i+2:]) < 0xDC00 || u16(b[i+2:]) > 0xDFFF {
				return "", &DecodeError{Kind: InvalidStringEncoding, Field: field, Offset: offset + i}
			}
			i += 2 // skip the low surrogate
		case unit >= 0xDC00 && unit <= 0xDFFF:
			return "", &DecodeError{Kind: InvalidStringEncoding, Field: field, Offset: offset + i}
		}
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := dec.Bytes(b)
	if err != nil {
		return "", &DecodeError{Kind: InvalidStringEncoding, Field: field, Offset: offset}
	}
	return string(s), nil
}
