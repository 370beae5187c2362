package img
import (
	"bytes"
	"testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixtail/stegano/util"
)

func fixtures( t *testing.T ) map[Format][]byte {
	return map[Format][]byte{
		JPEG: makeJPEG( t, 32, 24 ),
		PNG: makePNG( t, 32, 24 ),
		GIF: makeGIF( t, 32, 24, 2 ),
		BMP: makeBMP( t, 32, 24 ),
	}
}

func TestTailRoundTrip( t *testing.T ) {
	tests := [][]byte{
		nil,
		[]byte("Hello World!"),
		[]byte{0x00, 0x3b, 0xff, 0xd9, 0x3b, 0x00},
		bytes.Repeat([]byte("a"), 4096),
	}
	for format, image := range fixtures( t ) {
		for _, data := range tests {
			env, err := util.EncodeString( data )
			require.NoError( t, err )
			out, err := EmbedTail( image, format, env )
			if err != nil {
				t.Errorf("Failed to embed data in %s: %v", format.Name(), err)
				continue
			}
			assert.True( t, bytes.HasPrefix( out, image ), "%s: image bytes must be kept", format.Name() )

			tail, err := ExtractTail( out, format )
			if err != nil {
				t.Errorf("Failed to extract data from %s: %v", format.Name(), err)
				continue
			}
			dec, err := util.DecodeString( tail )
			if err != nil {
				t.Errorf("%s: invalid envelope: %v", format.Name(), err)
			} else if bytes.Equal( data, dec ) == false {
				t.Errorf("%s steganography spoiled data: %v != %v", format.Name(), data, dec)
			}
		}
	}
}

func TestTailFileRoundTrip( t *testing.T ) {
	for format, image := range fixtures( t ) {
		env, err := util.EncodeFile( []byte("notes.txt"), []byte("line 1\nline 2\n") )
		require.NoError( t, err )
		out, err := EmbedTail( image, format, env )
		require.NoError( t, err )
		tail, err := ExtractTail( out, format )
		require.NoError( t, err )
		name, content, err := util.DecodeFile( tail )
		require.NoError( t, err )
		assert.Equal( t, "notes.txt", string(name) )
		assert.Equal( t, "line 1\nline 2\n", string(content) )
	}
}

func TestTailGifIsText( t *testing.T ) {
	image := makeGIF( t, 8, 8, 1 )
	env := []byte{0x00, 0x3b, 0x3b, 0xff}
	out, err := EmbedTail( image, GIF, env )
	require.NoError( t, err )
	appended := out[ len(image): ]
	assert.Equal( t, "ADs7/w==", string(appended) )
	assert.NotContains( t, string(appended), ";" )
}

func TestTailBmpDeclaredSize( t *testing.T ) {
	// header declares 20 bytes, the rest is padding and payload
	image := make( []byte, 20 )
	copy( image, []byte{'B', 'M', 20, 0, 0, 0} )
	for i := 6; i < len(image); i++ {
		image[i] = 0xee
	}
	payload := []byte("payload")
	tail, err := ExtractTail( append( image, payload... ), BMP )
	require.NoError( t, err )
	assert.Equal( t, payload, tail )

	// declared size, not the real one, defines the boundary
	copy( image[2:6], []byte{0x10, 0, 0, 0} )
	tail, err = ExtractTail( append( image, payload... ), BMP )
	require.NoError( t, err )
	assert.Equal( t, append( bytes.Repeat( []byte{0xee}, 4 ), payload... ), tail )
}

func TestTailMarkerNotFound( t *testing.T ) {
	tests := []struct {
		format	Format
		data	[]byte
	}{
		{ JPEG, []byte{0xff, 0xd8, 0xff, 0xe0, 0x00} },
		{ PNG, []byte{0x89, 'P', 'N', 'G', 0, 0, 0, 0, 'I', 'E', 'N', 'D'} },
		{ GIF, []byte("GIF89a without trailer") },
		{ BMP, []byte{'B', 'M', 0xff} },
		{ BMP, []byte{'B', 'M', 0xff, 0x00, 0x00, 0x00, 0x00} },
	}
	for _, tc := range tests {
		_, err := ExtractTail( tc.data, tc.format )
		assert.ErrorIs( t, err, ErrMarkerNotFound, tc.format.Name() )
	}
}

func TestTailUnsupported( t *testing.T ) {
	_, err := EmbedTail( []byte{1}, nil, []byte{2} )
	assert.ErrorIs( t, err, ErrUnsupportedFormat )
	_, err = ExtractTail( []byte{1}, nil )
	assert.ErrorIs( t, err, ErrUnsupportedFormat )
}

func TestTailGifInvalidBase64( t *testing.T ) {
	_, err := ExtractTail( []byte("GIF89a;not*base64"), GIF )
	assert.ErrorIs( t, err, util.ErrMalformedEnvelope )
}

/*
 * Known limitation: the marker is assumed unique. A jpeg which carries
 * an inner ff d9 (an embedded thumbnail, for example) ends earlier than
 * expected and the extracted trailer is garbage.
 */
func TestTailMarkerCollision( t *testing.T ) {
	image := makeJPEG( t, 16, 16 )
	// APP1 segment holding a fake thumbnail right after SOI
	app1 := []byte{0xff, 0xe1, 0x00, 0x08, 0xff, 0xd8, 0x00, 0x00, 0xff, 0xd9}
	collided := util.Concat( image[:2], app1, image[2:] )

	env, _ := util.EncodeString( []byte("secret") )
	out, err := EmbedTail( collided, JPEG, env )
	require.NoError( t, err )

	tail, err := ExtractTail( out, JPEG )
	require.NoError( t, err )
	assert.NotEqual( t, env, tail )
	assert.Greater( t, len(tail), len(env) )
	dec, err := util.DecodeString( tail )
	if err == nil {
		assert.NotEqual( t, []byte("secret"), dec )
	}

	// a payload containing the marker itself is fine, the first one wins
	env, _ = util.EncodeString( []byte{0xff, 0xd9, 0xff, 0xd9} )
	out, err = EmbedTail( image, JPEG, env )
	require.NoError( t, err )
	tail, err = ExtractTail( out, JPEG )
	require.NoError( t, err )
	assert.Equal( t, env, tail )

	// but hiding twice keeps only the first payload reachable
	first, _ := util.EncodeString( []byte("first") )
	second, _ := util.EncodeString( []byte("second") )
	out, _ = EmbedTail( makePNG( t, 8, 8 ), PNG, first )
	out, _ = EmbedTail( out, PNG, second )
	tail, err = ExtractTail( out, PNG )
	require.NoError( t, err )
	dec, err = util.DecodeString( tail )
	require.NoError( t, err )
	assert.Equal( t, "first", string(dec) )
}
