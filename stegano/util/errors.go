package util
import (
	"errors"
)

var (
	ErrInvalidLength = errors.New("stegano: word must be exactly 4 bytes")
	ErrMalformedEnvelope = errors.New("stegano: malformed envelope")
	ErrPayloadTooLarge = errors.New("stegano: payload does not fit into 32-bit length")
)

func IsMalformed( err error ) bool { return errors.Is( err, ErrMalformedEnvelope ) }
