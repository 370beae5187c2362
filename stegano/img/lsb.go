package img
import (
	"pixtail/stegano/util"
)

// every envelope byte takes one bit from each of 8 stream bytes
func LSBCapacity( streamLen int ) int {
	return streamLen / 8
}

/*
 * Embeds envelope into the least significant bits of pixels, most
 * significant bit of every envelope byte first. One cursor runs over the
 * whole stream; bytes after the last written bit are left as they are.
 * pixels is modified in place and returned. Nothing is touched when the
 * envelope does not fit.
 */
func EmbedLSB( pixels, envelope []byte ) ([]byte, error) {
	if len(envelope) * 8 > len(pixels) {
		return nil, &CapacityError{ Max: LSBCapacity( len(pixels) ), Need: len(envelope) }
	}

	cursor := 0
	for _, b := range envelope {
		for _, bit := range util.ToBin( b ) {
			pixels[cursor] = ( pixels[cursor] & 0xfe ) | bit
			cursor++
		}
	}
	return pixels, nil
}

/*
 * Collects the least significant bits of every run of 8 stream bytes.
 * The result is the raw channel content: the envelope, if any, followed
 * by whatever the untouched bytes carry. Use the envelope length prefixes
 * to find where the payload ends. A trailing run shorter than 8 bytes is
 * ignored.
 */
func ExtractLSB( pixels []byte ) []byte {
	result := make( []byte, LSBCapacity( len(pixels) ) )
	for i := range result {
		result[i] = util.FromBin( pixels[ i * 8 : i * 8 + 8 ] )
	}
	return result
}
