package img
import (
	"bytes"
	"testing"
	"image"
	"image/gif"
	"image/png"
	"image/jpeg"
	"image/color"
	"image/color/palette"
	"golang.org/x/image/bmp"
)

// a deterministic gradient, no binary fixtures required
func gradient( w, h int ) *image.NRGBA {
	m := image.NewNRGBA( image.Rect( 0, 0, w, h ) )
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set( x, y, color.NRGBA{
				uint8( x * 7 + y ),
				uint8( y * 13 ),
				uint8( x * y ),
				0xff,
			})
		}
	}
	return m
}

func makePNG( t *testing.T, w, h int ) []byte {
	buf := new(bytes.Buffer)
	if err := png.Encode( buf, gradient( w, h ) ); err != nil {
		t.Fatalf("Failed to build png fixture: %v", err)
	}
	return buf.Bytes()
}

func makeBMP( t *testing.T, w, h int ) []byte {
	buf := new(bytes.Buffer)
	if err := bmp.Encode( buf, gradient( w, h ) ); err != nil {
		t.Fatalf("Failed to build bmp fixture: %v", err)
	}
	return buf.Bytes()
}

func makeJPEG( t *testing.T, w, h int ) []byte {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode( buf, gradient( w, h ), nil ); err != nil {
		t.Fatalf("Failed to build jpeg fixture: %v", err)
	}
	return buf.Bytes()
}

func makeGIF( t *testing.T, w, h, frames int ) []byte {
	g := &gif.GIF{}
	pal := color.Palette( palette.Plan9[:16] )
	for f := 0; f < frames; f++ {
		m := image.NewPaletted( image.Rect( 0, 0, w, h ), pal )
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetColorIndex( x, y, uint8( ( x + y + f ) % len(pal) ) )
			}
		}
		g.Image = append( g.Image, m )
		g.Delay = append( g.Delay, 10 )
	}
	buf := new(bytes.Buffer)
	if err := gif.EncodeAll( buf, g ); err != nil {
		t.Fatalf("Failed to build gif fixture: %v", err)
	}
	return buf.Bytes()
}
