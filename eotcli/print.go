package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/eotype/eot"
	"github.com/npillmayer/eotype/eotquery"
	"github.com/pterm/pterm"
)

func printInfo(f *eot.File) {
	data := [][]string{
		{"Field", "Value"},
		{"eot_size", fmt.Sprintf("%d", f.EOTSize)},
		{"font_data_size", fmt.Sprintf("%d", f.FontDataSize)},
		{"version", fmt.Sprintf("%s (0x%08x)", f.Version, uint32(f.Version))},
		{"flags", fmt.Sprintf("0x%08x", f.Flags)},
		{"panose", fmt.Sprintf("% x", f.FontPANOSE)},
		{"charset", fmt.Sprintf("%d", f.Charset)},
		{"italic", fmt.Sprintf("%d", f.Italic)},
		{"weight", fmt.Sprintf("%d", f.Weight)},
		{"fs_type", fmt.Sprintf("0x%04x", f.FSType)},
		{"unicode_range", fmt.Sprintf("%08x %08x %08x %08x",
			f.UnicodeRange[0], f.UnicodeRange[1], f.UnicodeRange[2], f.UnicodeRange[3])},
		{"code_page_range", fmt.Sprintf("%08x %08x", f.CodePageRange[0], f.CodePageRange[1])},
		{"checksum_adjustment", fmt.Sprintf("0x%08x", f.ChecksumAdjustment)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printNames(f *eot.File) {
	data := [][]string{
		{"Name", "Value"},
		{"family", f.FamilyName},
		{"style", f.StyleName},
		{"version", f.VersionName},
		{"full name", f.FullName},
	}
	if root, ok := f.RootString.Unwrap(); ok {
		data = append(data, []string{"root string", root})
	}
	if sig, ok := f.Signature.Unwrap(); ok {
		data = append(data, []string{"signature", fmt.Sprintf("%d bytes", len(sig))})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printFlags(f *eot.File) {
	names := eotquery.ProcessingFlagNames(f)
	if len(names) == 0 {
		pterm.Printf("no processing flags set\n")
	}
	for _, name := range names {
		pterm.Printf("flag %s\n", name)
	}
	pterm.Printf("embedding permission: %s\n", eotquery.Embedding(f))
	if eotquery.NoSubsetting(f) {
		pterm.Printf("subsetting not permitted\n")
	}
	if eotquery.BitmapOnly(f) {
		pterm.Printf("bitmap embedding only\n")
	}
}

func printURLs(f *eot.File) {
	urls := eotquery.RootURLs(f)
	if len(urls) == 0 {
		pterm.Printf("container is not bound to root URLs\n")
		return
	}
	for _, url := range urls {
		pterm.Printf("bound to %s\n", url)
	}
}

func printWarnings(f *eot.File) {
	if !f.HasWarnings() {
		pterm.Info.Println("container decoded without findings")
		return
	}
	for _, w := range f.Warnings() {
		pterm.Warning.Println(w.String())
	}
}

func extractPayload(f *eot.File, path string) error {
	if path == "" {
		return errors.New("extract needs a target file name")
	}
	raw, ok := f.FontData().Raw()
	if !ok {
		reason, _ := f.FontData().Unsupported()
		return fmt.Errorf("payload cannot be extracted: %s", reason)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return err
	}
	pterm.Info.Printf("wrote %d payload bytes to %s\n", len(raw), path)
	return nil
}
