package img
import (
	"fmt"
	"errors"
)

var (
	ErrCapacityExceeded = errors.New("img: payload exceeds carrier capacity")
	ErrUnsupportedFormat = errors.New("img: unsupported image format")
	ErrMarkerNotFound = errors.New("img: end of image marker not found")
)

// CapacityError reports the largest envelope (in bytes) the carrier accepts.
type CapacityError struct {
	Max	int
	Need	int
}

func(e *CapacityError) Error() string {
	return fmt.Sprintf("img: envelope of %d bytes exceeds capacity of %d bytes", e.Need, e.Max)
}

func(e *CapacityError) Is( target error ) bool {
	return target == ErrCapacityExceeded
}

type UnsupportedFormatError struct {
	Suffix	string
}

func(e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("img: unsupported image format %q", e.Suffix)
}

func(e *UnsupportedFormatError) Is( target error ) bool {
	return target == ErrUnsupportedFormat
}
