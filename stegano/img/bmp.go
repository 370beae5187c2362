package img
import (
	"bytes"
	"golang.org/x/image/bmp"
)

var (
	rgbChannels = []int{ 0, 1, 2 }
)

func(bmpFormat) flatten( data []byte ) (*Pixels, error) {
	img, err := bmp.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	rgba := toNRGBA( img )
	opaque( rgba )
	return newPixels( BMP, flattenNRGBA( rgba, rgbChannels ), rgba, nil ), nil
}

// an opaque image is written as 24-bit, which keeps every rgb sample
func(bmpFormat) paint( p *Pixels ) ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	paintNRGBA( p.rgba, rgbChannels, p.Data )
	buf := new(bytes.Buffer)
	if err := bmp.Encode( buf, p.rgba ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
