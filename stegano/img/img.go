package img
import (
	"bytes"
	"strings"
)

/*
 * Format is the closed set of supported containers. Every format knows
 * where its own data ends (for the trailer engine) and how to flatten
 * itself into a pixel byte stream and back (for the LSB engine), so a
 * new format does not compile until it implements both.
 */
type Format interface {
	Name() string
	Suffixes() []string

	// offset right after the end of the container's own data
	boundary( data []byte ) (int, error)
	// reversible transform applied to the envelope before it is appended
	wrap( envelope []byte ) []byte
	unwrap( tail []byte ) ([]byte, error)

	flatten( data []byte ) (*Pixels, error)
	paint( p *Pixels ) ([]byte, error)
}

var (
	JPEG Format = jpegFormat{}
	PNG Format = pngFormat{}
	GIF Format = gifFormat{}
	BMP Format = bmpFormat{}

	Formats = []Format{ JPEG, PNG, GIF, BMP }
)

var (
	gifMagic = []byte("GIF8")
	pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	bmpMagic = []byte("BM")
)

// maps a file suffix (with or without the leading dot) onto a format
func ParseFormat( suffix string ) (Format, error) {
	s := strings.ToLower( strings.TrimPrefix( suffix, "." ) )
	for _, f := range Formats {
		for _, known := range f.Suffixes() {
			if s == known {
				return f, nil
			}
		}
	}
	return nil, &UnsupportedFormatError{ suffix }
}

// detects a format by its magic bytes
func Sniff( data []byte ) (Format, error) {
	switch {
	case bytes.HasPrefix( data, gifMagic ):
		return GIF, nil
	case bytes.HasPrefix( data, pngMagic ):
		return PNG, nil
	case bytes.HasPrefix( data, jpegMagic ):
		return JPEG, nil
	case bytes.HasPrefix( data, bmpMagic ):
		return BMP, nil
	}
	return nil, &UnsupportedFormatError{ "unknown" }
}

type jpegFormat struct{}
type pngFormat struct{}
type gifFormat struct{}
type bmpFormat struct{}

func(jpegFormat) Name() string { return "jpeg" }
func(pngFormat) Name() string { return "png" }
func(gifFormat) Name() string { return "gif" }
func(bmpFormat) Name() string { return "bmp" }

func(jpegFormat) Suffixes() []string { return []string{"jpeg", "jpg"} }
func(pngFormat) Suffixes() []string { return []string{"png"} }
func(gifFormat) Suffixes() []string { return []string{"gif"} }
func(bmpFormat) Suffixes() []string { return []string{"bmp"} }
