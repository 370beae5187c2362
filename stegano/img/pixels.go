package img
import (
	"fmt"
	"image"
	"image/gif"
	"golang.org/x/image/draw"
)

/*
 * Pixels is a decoded carrier flattened into one byte per channel sample.
 * Samples are visited column by column: x outer, y inner. The layout of a
 * single pixel depends on the format:
 *	png		A, R, G, B
 *	bmp, jpeg	R, G, B (alpha does not survive the encoders)
 *	gif		palette index, frame after frame
 * Data is owned by the caller and may be modified before Encode.
 */
type Pixels struct {
	Format	Format
	Data	[]byte

	rgba	*image.NRGBA	// png, bmp, jpeg
	anim	*gif.GIF	// gif
	size	int
}

func newPixels( format Format, data []byte, rgba *image.NRGBA, anim *gif.GIF ) *Pixels {
	return &Pixels{ format, data, rgba, anim, len(data) }
}

// sniffs the format and flattens the image
func DecodePixels( data []byte ) (*Pixels, error) {
	format, err := Sniff( data )
	if err != nil {
		return nil, err
	}
	return format.flatten( data )
}

// re-encodes the image with the current content of Data
func(p *Pixels) Encode() ([]byte, error) {
	return p.Format.paint( p )
}

func(p *Pixels) Capacity() int {
	return LSBCapacity( len(p.Data) )
}

func(p *Pixels) check() error {
	if len(p.Data) != p.size {
		return fmt.Errorf("img: pixel stream has %d bytes, image needs %d", len(p.Data), p.size)
	}
	return nil
}

func toNRGBA( src image.Image ) *image.NRGBA {
	if m, ok := src.(*image.NRGBA); ok {
		return m
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA( bounds )
	draw.Copy( dst, bounds.Min, src, bounds, draw.Src, nil )
	return dst
}

func opaque( m *image.NRGBA ) {
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i] = 0xff
	}
}

// channels lists the NRGBA offsets (0=R, 1=G, 2=B, 3=A) to visit per pixel
func flattenNRGBA( m *image.NRGBA, channels []int ) []byte {
	bounds := m.Bounds()
	data := make( []byte, 0, bounds.Dx() * bounds.Dy() * len(channels) )
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			off := m.PixOffset( x, y )
			for _, c := range channels {
				data = append( data, m.Pix[ off + c ] )
			}
		}
	}
	return data
}

func paintNRGBA( m *image.NRGBA, channels []int, data []byte ) {
	bounds := m.Bounds()
	i := 0
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			off := m.PixOffset( x, y )
			for _, c := range channels {
				m.Pix[ off + c ] = data[i]
				i++
			}
		}
	}
}
