package eotquery

import (
	"strings"

	"github.com/npillmayer/eotype/eot"
)

// NameInfo returns the name records of a container as a map. Keys are
// "family", "subfamily", "version" and "fullname"; only non-empty names are
// included.
func NameInfo(f *eot.File) map[string]string {
	info := map[string]string{}
	if f == nil {
		return info
	}
	for key, name := range map[string]string{
		"family":    f.FamilyName,
		"subfamily": f.StyleName,
		"version":   f.VersionName,
		"fullname":  f.FullName,
	} {
		if name != "" {
			info[key] = name
		}
	}
	return info
}

// RootURLs returns the origins the font is bound to. The container's root
// string may carry multiple URLs separated by NUL terminators; empty entries
// are dropped. A container without a root string yields nil.
func RootURLs(f *eot.File) []string {
	if f == nil {
		return nil
	}
	root, ok := f.RootString.Unwrap()
	if !ok {
		return nil
	}
	var urls []string
	for _, u := range strings.Split(root, "\x00") {
		if u != "" {
			urls = append(urls, u)
		}
	}
	tracer().Debugf("container is bound to %d root URLs", len(urls))
	return urls
}

// IsWebObject reports whether the container was created for web usage
// (the WEB_OBJECT processing flag).
func IsWebObject(f *eot.File) bool {
	return f != nil && eot.ProcessingFlag(f.Flags)&eot.FlagWebObject != 0
}

// IsSubset reports whether the embedded font is a subset of a larger font.
func IsSubset(f *eot.File) bool {
	return f != nil && eot.ProcessingFlag(f.Flags)&eot.FlagSubset != 0
}

// ProcessingFlagNames returns the names of all known processing flags set in
// the container's flags word, in ascending bit order. Reserved bits are
// ignored.
func ProcessingFlagNames(f *eot.File) []string {
	if f == nil {
		return nil
	}
	flags := eot.ProcessingFlag(f.Flags)
	var names []string
	for _, entry := range processingFlagTable {
		if flags&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return names
}

var processingFlagTable = []struct {
	flag eot.ProcessingFlag
	name string
}{
	{eot.FlagSubset, "SUBSET"},
	{eot.FlagTTCompressed, "TT_COMPRESSED"},
	{eot.FlagFailIfVariationSimulated, "FAIL_IF_VARIATION_SIMULATED"},
	{eot.FlagEmbedEUDC, "EMBED_EUDC"},
	{eot.FlagValidationTests, "VALIDATION_TESTS"},
	{eot.FlagWebObject, "WEB_OBJECT"},
	{eot.FlagXOREncryptData, "XOR_ENCRYPT_DATA"},
}
