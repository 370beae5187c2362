package img
import (
	"testing"
	"github.com/stretchr/testify/assert"
)

func TestParseFormat( t *testing.T ) {
	tests := map[string]Format{
		"jpg": JPEG,
		"JPEG": JPEG,
		".Jpg": JPEG,
		"png": PNG,
		"GIF": GIF,
		"bmp": BMP,
	}
	for suffix, expected := range tests {
		f, err := ParseFormat( suffix )
		assert.NoError( t, err, suffix )
		assert.Equal( t, expected, f, suffix )
	}

	for _, suffix := range []string{ "", "tiff", "webp", "jpgx", "pn" } {
		f, err := ParseFormat( suffix )
		assert.Nil( t, f )
		assert.ErrorIs( t, err, ErrUnsupportedFormat )
		var unsupported *UnsupportedFormatError
		if assert.ErrorAs( t, err, &unsupported ) {
			assert.Equal( t, suffix, unsupported.Suffix )
		}
	}
}

func TestSniff( t *testing.T ) {
	tests := []struct {
		data	[]byte
		format	Format
	}{
		{ makePNG( t, 2, 2 ), PNG },
		{ makeJPEG( t, 2, 2 ), JPEG },
		{ makeGIF( t, 2, 2, 1 ), GIF },
		{ makeBMP( t, 2, 2 ), BMP },
	}
	for _, tc := range tests {
		f, err := Sniff( tc.data )
		assert.NoError( t, err )
		assert.Equal( t, tc.format, f )
	}
	_, err := Sniff( []byte("plain text") )
	assert.ErrorIs( t, err, ErrUnsupportedFormat )
	_, err = Sniff( nil )
	assert.ErrorIs( t, err, ErrUnsupportedFormat )
}
