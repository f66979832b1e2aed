package eotype

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/eotype/eot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromBinaryPropagatesDecodeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.eotype")
	defer teardown()
	//
	_, err := FromBinary(make([]byte, 10))
	derr, ok := err.(*eot.DecodeError)
	if !ok || derr.Kind != eot.TruncatedHeader {
		t.Fatalf("expected TruncatedHeader from container decode, got %v", err)
	}
}

func TestFamilyName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.eotype")
	defer teardown()
	//
	f, err := FromBinary(synthContainer(t, "Maki", "Regular", 0))
	if err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}
	family, subfamily := FamilyName(f)
	if family != "Maki" || subfamily != "Regular" {
		t.Errorf("expected Maki/Regular, got %s/%s", family, subfamily)
	}
}

func TestParseEOTFontRejectsUnsupportedPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.eotype")
	defer teardown()
	//
	b := synthContainer(t, "Maki", "Regular", uint32(eot.FlagTTCompressed))
	_, err := ParseEOTFont(b)
	if err == nil || !strings.Contains(err.Error(), "compressed") {
		t.Fatalf("expected an unwrap error naming the compression, got %v", err)
	}
	// header fields must remain inspectable through the container decoder
	f, err := FromBinary(b)
	if err != nil {
		t.Fatalf("container with compressed payload must still decode, got %v", err)
	}
	if f.FamilyName != "Maki" {
		t.Errorf("expected header names to survive, got %q", f.FamilyName)
	}
}

func TestParseEOTFontRejectsNonSFNTPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.eotype")
	defer teardown()
	//
	// the payload bytes are no valid SFNT stream, so the handoff must fail
	if _, err := ParseEOTFont(synthContainer(t, "Maki", "Regular", 0)); err == nil {
		t.Fatal("expected the SFNT parser to reject a dummy payload")
	}
}

// synthContainer builds a minimal version 1.0 container with a 4-byte dummy
// payload that is not a parsable font.
func synthContainer(t *testing.T, family, style string, flags uint32) []byte {
	t.Helper()
	le16 := func(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
	le32 := func(v uint32) []byte {
		return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	}
	record := func(s string) []byte {
		units := utf16.Encode([]rune(s))
		b := append([]byte{0, 0}, le16(uint16(2*len(units)))...)
		for _, u := range units {
			b = append(b, le16(u)...)
		}
		return b
	}
	fixed := make([]byte, 80)
	copy(fixed[4:], le32(4))                  // font data size
	copy(fixed[8:], le32(uint32(eot.Version1)))
	copy(fixed[12:], le32(flags))
	copy(fixed[34:], le16(eot.MagicNumber))
	b := fixed
	b = append(b, record(family)...)
	b = append(b, record(style)...)
	b = append(b, record("")...) // version name
	b = append(b, record("")...) // full name
	b = append(b, []byte("OTTO")...)
	copy(b[0:], le32(uint32(len(b))))
	return b
}
