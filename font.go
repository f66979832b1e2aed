package eotype

import (
	"fmt"
	"os"

	"github.com/npillmayer/eotype/eot"
	"golang.org/x/image/font/sfnt"
)

// EmbeddedFont is an EOT container together with its unwrapped font payload.
// Binary holds the raw SFNT bytes of the payload, SFNT the parsed font.
// Container gives access to every decoded header field.
type EmbeddedFont struct {
	Fontname  string
	Filepath  string // file path, empty if parsed from memory
	Binary    []byte // raw SFNT payload data
	SFNT      *sfnt.Font
	Container *eot.File
}

// LoadEOTFont loads an EOT file, decodes the container and parses the
// embedded font payload.
func LoadEOTFont(eotfile string) (*EmbeddedFont, error) {
	bytez, err := os.ReadFile(eotfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseEOTFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = eotfile
	return f, nil
}

// ParseEOTFont decodes an EOT container from memory and parses the embedded
// font payload. Containers whose payload is compressed or encrypted decode
// structurally, but cannot be unwrapped; this is reported as an error here.
// Clients that only need header fields should call FromBinary instead.
func ParseEOTFont(data []byte) (f *EmbeddedFont, err error) {
	container, err := eot.Decode(data)
	if err != nil {
		return nil, err
	}
	if reason, unsupported := container.FontData().Unsupported(); unsupported {
		return nil, fmt.Errorf("EOT payload cannot be unwrapped: %s", reason)
	}
	raw, _ := container.FontData().Raw()
	f = &EmbeddedFont{Container: container, Binary: raw}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		// the container header carries its own copy of the full name
		f.Fontname = container.FullName
	}
	tracer().Debugf("loaded and parsed embedded SFNT %s", f.Fontname)
	return f, nil
}
