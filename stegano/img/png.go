package img
import (
	"bytes"
	"image/png"
)

var (
	argbChannels = []int{ 3, 0, 1, 2 }
)

func(pngFormat) flatten( data []byte ) (*Pixels, error) {
	img, err := png.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	rgba := toNRGBA( img )
	return newPixels( PNG, flattenNRGBA( rgba, argbChannels ), rgba, nil ), nil
}

// alpha changes make the image translucent so the encoder keeps all four channels
func(pngFormat) paint( p *Pixels ) ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	paintNRGBA( p.rgba, argbChannels, p.Data )
	buf := new(bytes.Buffer)
	if err := png.Encode( buf, p.rgba ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
