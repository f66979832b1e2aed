package eot

// Reading bytes from an EOT container's binary representation.
// All multi-byte values are little-endian (EOT submission, section 3).

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<0 | uint16(b[1])<<8
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<0 | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// cursor walks the variable-length part of a container sequentially,
// never reading past the end of the underlying buffer.
type cursor struct {
	data []byte
	pos  int
}

// u16 reads the next little-endian uint16. field names the header field
// being read, for diagnostics.
func (c *cursor) u16(field string) (uint16, *DecodeError) {
	if c.pos+2 > len(c.data) {
		return 0, &DecodeError{Kind: TruncatedHeader, Field: field, Offset: c.pos}
	}
	n := u16(c.data[c.pos:])
	c.pos += 2
	return n, nil
}

// u32 reads the next little-endian uint32.
func (c *cursor) u32(field string) (uint32, *DecodeError) {
	if c.pos+4 > len(c.data) {
		return 0, &DecodeError{Kind: TruncatedHeader, Field: field, Offset: c.pos}
	}
	n := u32(c.data[c.pos:])
	c.pos += 4
	return n, nil
}

// bytes returns a view of the next n bytes without copying.
func (c *cursor) bytes(n int, field string) ([]byte, *DecodeError) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, &DecodeError{Kind: TruncatedHeader, Field: field, Offset: c.pos}
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
