package util
import (
	"math"
)

/*
 * Envelope is the framed form of a payload which is actually embedded:
 *	file:	nameLen ‖ name ‖ contentLen ‖ content
 *	string:	contentLen ‖ content
 * every length is a big endian 32-bit word. Bytes following the frame
 * (LSB noise, for example) are ignored by the decoders.
 */

func EncodeFile( name, content []byte ) ([]byte, error) {
	if uint64(len(name)) > math.MaxUint32 || uint64(len(content)) > math.MaxUint32 {
		return nil, ErrPayloadTooLarge
	}
	return Concat(
		U32ToBytes( uint32(len(name)) ),
		name,
		U32ToBytes( uint32(len(content)) ),
		content,
	), nil
}

func EncodeString( text []byte ) ([]byte, error) {
	if uint64(len(text)) > math.MaxUint32 {
		return nil, ErrPayloadTooLarge
	}
	return Concat( U32ToBytes( uint32(len(text)) ), text ), nil
}

// reads a length word at offset and checks that length bytes follow it.
func readLength( envelope []byte, offset int ) (int, error) {
	if offset < 0 || len(envelope) - offset < WordSize {
		return 0, ErrMalformedEnvelope
	}
	length, err := BytesToU32( envelope[ offset : offset + WordSize ] )
	if err != nil {
		return 0, err
	}
	if uint64(length) > uint64(len(envelope) - offset - WordSize) {
		return 0, ErrMalformedEnvelope
	}
	return int(length), nil
}

func DecodeName( envelope []byte ) ([]byte, error) {
	nameLen, err := readLength( envelope, 0 )
	if err != nil {
		return nil, err
	}
	return envelope[ WordSize : WordSize + nameLen ], nil
}

func DecodeContentLength( envelope []byte ) (int, error) {
	nameLen, err := readLength( envelope, 0 )
	if err != nil {
		return 0, err
	}
	return readLength( envelope, WordSize + nameLen )
}

func DecodeContent( envelope []byte ) ([]byte, error) {
	nameLen, err := readLength( envelope, 0 )
	if err != nil {
		return nil, err
	}
	contentLen, err := readLength( envelope, WordSize + nameLen )
	if err != nil {
		return nil, err
	}
	start := 2 * WordSize + nameLen
	return envelope[ start : start + contentLen ], nil
}

// name and content at once
func DecodeFile( envelope []byte ) ([]byte, []byte, error) {
	name, err := DecodeName( envelope )
	if err != nil {
		return nil, nil, err
	}
	content, err := DecodeContent( envelope )
	if err != nil {
		return nil, nil, err
	}
	return name, content, nil
}

func DecodeString( envelope []byte ) ([]byte, error) {
	length, err := readLength( envelope, 0 )
	if err != nil {
		return nil, err
	}
	return envelope[ WordSize : WordSize + length ], nil
}
