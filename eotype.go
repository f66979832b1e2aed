/*
Package eotype is for handling Embedded OpenType (EOT) font files.

EOT (https://www.w3.org/submissions/EOT/) wraps an ordinary TTF/OpenType font
in a small header carrying names, embedding permissions and web-origin
bindings. It predates WOFF and survives mostly in legacy corporate intranets
and old "@font-face" deployments; tooling that meets such files still needs to
look inside them.

This module splits the work the same way the file format does:

▪︎ Package eot decodes the container itself: header fields, name records,
root string and signature, and the byte range of the embedded font payload.

▪︎ Package eotquery interprets decoded fields (embedding permissions,
processing flags, root URLs).

▪︎ This root package connects the container to a font parser: it unwraps the
payload and hands it to x/image/font/sfnt, yielding a usable font object.

Compressed (MicroType Express) and XOR-encrypted payloads are detected but not
decoded; for those the container header remains fully inspectable through
package eot, while this package reports an error on unwrapping.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eotype

import (
	"github.com/npillmayer/eotype/eot"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.eotype'
func tracer() tracing.Trace {
	return tracing.Select("font.eotype")
}

// FromBinary decodes raw EOT bytes into a container record.
//
// The input is expected to contain a complete EOT file. It must not change
// after decoding for the container's payload view to stay usable.
func FromBinary(data []byte) (*eot.File, error) {
	return eot.Decode(data)
}

// FamilyName extracts family and subfamily names from a decoded container.
//
// EOT carries these names in its own header, so they are available even for
// containers whose payload cannot be unwrapped.
func FamilyName(f *eot.File) (family, subfamily string) {
	if f == nil {
		return "", ""
	}
	return f.FamilyName, f.StyleName
}
