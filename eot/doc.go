/*
Package eot decodes Embedded OpenType (EOT) font containers.

EOT is a legacy wrapper format (https://www.w3.org/submissions/EOT/) which
prepends a header to an ordinary TTF/OpenType font: a fixed 82-byte prefix of
little-endian scalar fields, followed by a sequence of length-prefixed UTF-16LE
name records (family, style, version, full name — and, for newer container
versions, a root string and a signature block), followed by the font payload
itself.

Package `eot` parses the container only. It exposes the header fields and the
byte range of the embedded payload, but it will not interpret the payload's
SFNT structure — clients hand the payload to a font-parsing library of their
choice (the sister root package does this with x/image/font/sfnt).
Payloads marked as compressed (MicroType Express) or XOR-encrypted in the
header's processing flags are not decoded; the container still parses
successfully and the payload is tagged as unsupported, so that header fields
remain inspectable.

Decoding is strict about structural fields (magic number, sizes, string
encodings) and permissive about fields real-world EOT writers are known to get
wrong (reserved words, zero paddings): violations of the latter are collected
as warnings on the decoded File instead of failing the parse.

# Status

Versions 0x00010000, 0x00020001 and 0x00020002 are recognized. EUDC fields of
the 0x00020002 revision are not decoded.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.eotype'
func tracer() tracing.Trace {
	return tracing.Select("font.eotype")
}
