package img
import (
	"io"
	"fmt"
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"lukechampine.com/jsteg"
)

const (
	JpegQuality = 100
)

// pixel mode. jpeg is lossy, so bits written here rarely survive the encoder.
func(jpegFormat) flatten( data []byte ) (*Pixels, error) {
	img, err := jpeg.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	rgba := toNRGBA( img )
	opaque( rgba )
	return newPixels( JPEG, flattenNRGBA( rgba, rgbChannels ), rgba, nil ), nil
}

func(jpegFormat) paint( p *Pixels ) ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	paintNRGBA( p.rgba, rgbChannels, p.Data )
	buf := new(bytes.Buffer)
	if err := jpeg.Encode( buf, p.rgba, &jpeg.Options{ Quality: JpegQuality } ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/*
 * Coefficient mode: the envelope goes into the least significant bits of
 * the quantized luma DCT coefficients whose magnitude is at least 2, which
 * the jpeg encoder does not touch again. The image is re-encoded once, on
 * the way in.
 */
func HideInJpeg( jpgBytes []byte, envelope []byte ) ([]byte, error) {
	img, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return nil, err
	}
	outbuf := bytes.NewBuffer( []byte{} )
	err = jsteg.Hide( outbuf, img, envelope, nil )
	if errors.Is( err, jsteg.ErrTooSmall ) {
		limit, err := coefficientCapacity( img )
		if err != nil {
			return nil, err
		}
		return nil, &CapacityError{ Max: limit, Need: len(envelope) }
	}
	if err != nil {
		return nil, fmt.Errorf("jpeg: failed to hide %d bytes: %w", len(envelope), err)
	}
	return outbuf.Bytes(), nil
}

// raw coefficient bits; the envelope prefix tells where the payload ends
func RevealFromJpeg( jpgBytes []byte ) ([]byte, error) {
	return jsteg.Reveal( bytes.NewReader( jpgBytes ) )
}

// the largest envelope (in bytes) HideInJpeg accepts for this jpeg
func JpegCapacity( jpgBytes []byte ) (int, error) {
	img, err := jpeg.Decode( bytes.NewReader( jpgBytes ) )
	if err != nil {
		return 0, err
	}
	return coefficientCapacity( img )
}

/*
 * Usable coefficients do not depend on the hidden data, so an empty run
 * shows all of them. Reveal rounds the bit count up to whole bytes; one
 * more run tells whether the last byte is complete.
 */
func coefficientCapacity( img image.Image ) (int, error) {
	buf := new(bytes.Buffer)
	if err := jsteg.Hide( buf, img, nil, nil ); err != nil {
		return 0, err
	}
	raw, err := jsteg.Reveal( buf )
	if err != nil {
		return 0, err
	}
	n := len(raw)
	if n > 0 && errors.Is( jsteg.Hide( io.Discard, img, make( []byte, n ), nil ), jsteg.ErrTooSmall ) {
		n--
	}
	return n, nil
}
