package img
import (
	"bytes"
	"encoding/base64"

	"pixtail/stegano/util"
)

/*
 * Trailer steganography: decoders stop at the end of the container's own
 * data, so anything appended after it is carried along unnoticed.
 * Every boundary rule assumes its marker is unique; a body which already
 * contains the marker earlier yields an earlier boundary.
 */
var (
	jpegEnd = []byte{0xff, 0xd9}
	// zero-length IEND chunk with its fixed crc
	pngEnd = []byte{0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82}
)

const (
	gifEnd = byte(';')
	bmpSizeOffset = 2
)

func EmbedTail( image []byte, format Format, envelope []byte ) ([]byte, error) {
	if format == nil {
		return nil, ErrUnsupportedFormat
	}
	return util.Concat( image, format.wrap( envelope ) ), nil
}

// returns everything after the end of the image data, unwrapped
func ExtractTail( image []byte, format Format ) ([]byte, error) {
	if format == nil {
		return nil, ErrUnsupportedFormat
	}
	from, err := format.boundary( image )
	if err != nil {
		return nil, err
	}
	return format.unwrap( image[from:] )
}

// first ff d9
func(jpegFormat) boundary( data []byte ) (int, error) {
	idx := util.FindSubsequence( data, jpegEnd )
	if idx == util.NotFound {
		return 0, ErrMarkerNotFound
	}
	return idx + len(jpegEnd), nil
}

// first IEND chunk, matched literally
func(pngFormat) boundary( data []byte ) (int, error) {
	idx := util.FindSubsequence( data, pngEnd )
	if idx == util.NotFound {
		return 0, ErrMarkerNotFound
	}
	return idx + len(pngEnd), nil
}

// the last ';' in the file
func(gifFormat) boundary( data []byte ) (int, error) {
	idx := bytes.LastIndexByte( data, gifEnd )
	if idx < 0 {
		return 0, ErrMarkerNotFound
	}
	return idx + 1, nil
}

// the file size declared in the header, stored little endian
func(bmpFormat) boundary( data []byte ) (int, error) {
	if len(data) < bmpSizeOffset + util.WordSize {
		return 0, ErrMarkerNotFound
	}
	field := make( []byte, util.WordSize )
	copy( field, data[ bmpSizeOffset : bmpSizeOffset + util.WordSize ] )
	util.Reverse( field )
	size, err := util.BytesToU32( field )
	if err != nil {
		return 0, err
	}
	if uint64(size) > uint64(len(data)) {
		return 0, ErrMarkerNotFound
	}
	return int(size), nil
}

func(jpegFormat) wrap( envelope []byte ) []byte { return envelope }
func(pngFormat) wrap( envelope []byte ) []byte { return envelope }
func(bmpFormat) wrap( envelope []byte ) []byte { return envelope }

// base64 never produces ';' so the last one stays the gif trailer
func(gifFormat) wrap( envelope []byte ) []byte {
	buf := make( []byte, base64.StdEncoding.EncodedLen( len(envelope) ) )
	base64.StdEncoding.Encode( buf, envelope )
	return buf
}

func(jpegFormat) unwrap( tail []byte ) ([]byte, error) { return tail, nil }
func(pngFormat) unwrap( tail []byte ) ([]byte, error) { return tail, nil }
func(bmpFormat) unwrap( tail []byte ) ([]byte, error) { return tail, nil }

func(gifFormat) unwrap( tail []byte ) ([]byte, error) {
	buf := make( []byte, base64.StdEncoding.DecodedLen( len(tail) ) )
	n, err := base64.StdEncoding.Decode( buf, tail )
	if err != nil {
		return nil, util.ErrMalformedEnvelope
	}
	return buf[:n], nil
}
