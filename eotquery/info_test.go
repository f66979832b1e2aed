package eotquery

import (
	"bytes"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/eotype/eot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type QueryTestEnviron struct {
	suite.Suite
	eotf *eot.File
}

// listen for 'go test' command --> run test methods
func TestQueryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.eotype")
	defer teardown()
	suite.Run(t, new(QueryTestEnviron))
}

// run once, before test suite methods
func (env *QueryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.eotype").SetTraceLevel(tracing.LevelError)
	b := buildContainer(
		[4]string{"Maki", "Regular", "Version 001.000", "Maki"},
		"https://example.com\x00https://example.org",
		uint32(eot.FlagSubset|eot.FlagWebObject),
		0x0104, // preview & print, no subsetting
	)
	f, err := eot.Decode(b)
	env.Require().NoError(err, "synthetic container must decode")
	env.eotf = f
	tracing.Select("font.eotype").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *QueryTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *QueryTestEnviron) TestNameInfo() {
	info := NameInfo(env.eotf)
	env.Equal("Maki", info["family"], "expected font family name 'Maki'")
	env.Equal("Regular", info["subfamily"], "expected subfamily 'Regular'")
	env.Equal("Version 001.000", info["version"])
	env.Equal("Maki", info["fullname"])
	env.Empty(NameInfo(nil), "nil container must yield an empty info map")
}

func (env *QueryTestEnviron) TestRootURLs() {
	urls := RootURLs(env.eotf)
	env.Require().Len(urls, 2, "expected the NUL-separated root string to split into 2 URLs")
	env.Equal("https://example.com", urls[0])
	env.Equal("https://example.org", urls[1])
	env.Nil(RootURLs(nil))
}

func (env *QueryTestEnviron) TestEmbedding() {
	env.Equal(PreviewPrint, Embedding(env.eotf))
	env.Equal("preview & print", Embedding(env.eotf).String())
	env.True(NoSubsetting(env.eotf), "FSType bit 0x0100 must report no-subsetting")
	env.False(BitmapOnly(env.eotf))
	env.Equal(RestrictedLicense, Embedding(nil), "nil container must report the most restrictive level")
}

func (env *QueryTestEnviron) TestProcessingFlags() {
	env.True(IsSubset(env.eotf))
	env.True(IsWebObject(env.eotf))
	env.Equal([]string{"SUBSET", "WEB_OBJECT"}, ProcessingFlagNames(env.eotf))
}

// --- Synthetic container fixture -------------------------------------------

func buildContainer(names [4]string, root string, flags uint32, fsType uint16) []byte {
	buf := &bytes.Buffer{}
	fixed := make([]byte, 80)
	le32 := func(b []byte, off int, v uint32) {
		b[off], b[off+1], b[off+2], b[off+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	}
	le32(fixed, 4, 4)          // font data size
	le32(fixed, 8, 0x00020001) // version with root string
	le32(fixed, 12, flags)
	fixed[32], fixed[33] = byte(fsType), byte(fsType>>8)
	fixed[34], fixed[35] = 0x4C, 0x50 // magic number
	buf.Write(fixed)
	record := func(s string) {
		units := utf16.Encode([]rune(s))
		buf.Write([]byte{0, 0, byte(2 * len(units)), byte(2 * len(units) >> 8)})
		for _, u := range units {
			buf.Write([]byte{byte(u), byte(u >> 8)})
		}
	}
	for _, n := range names {
		record(n)
	}
	record(root)
	if root != "" {
		buf.Write([]byte{0, 0}) // empty signature block
	}
	buf.Write([]byte("OTTO"))
	out := buf.Bytes()
	le32(out, 0, uint32(len(out)))
	return out
}
