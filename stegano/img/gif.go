package img
import (
	"bytes"
	"image/gif"
)

/*
 * gif carries palette indices, so the stream consists of the indices of
 * every frame. Re-encoding keeps the palettes, which keeps the indices.
 */
func(gifFormat) flatten( data []byte ) (*Pixels, error) {
	g, err := gif.DecodeAll( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	stream := []byte{}
	for _, frame := range g.Image {
		bounds := frame.Bounds()
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				stream = append( stream, frame.Pix[ frame.PixOffset( x, y ) ] )
			}
		}
	}
	return newPixels( GIF, stream, nil, g ), nil
}

func(gifFormat) paint( p *Pixels ) ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	i := 0
	for _, frame := range p.anim.Image {
		bounds := frame.Bounds()
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				frame.Pix[ frame.PixOffset( x, y ) ] = p.Data[i]
				i++
			}
		}
	}
	outbuf := bytes.NewBuffer( []byte{} )
	if err := gif.EncodeAll( outbuf, p.anim ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}
