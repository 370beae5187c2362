package util
import (
	"bytes"
	"encoding/binary"
)

const (
	WordSize = 4	// size of every length field, bytes
	NotFound = -1
)

/*
 * transform data from/to binary form.
 * bits are kept most significant first, one bit per byte.
 */
func ToBin( x byte ) []byte {
	result := make( []byte, 8 )
	for i := 0; i < 8; i++ {
		result[i] = ( x >> uint(7 - i) ) & 0x1
	}
	return result
}

func FromBin( x []byte ) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result = ( result << 1 ) | ( x[i] & 0x1 )
	}
	return result
}

// big endian 4-byte words
func U32ToBytes( x uint32 ) []byte {
	result := make( []byte, WordSize )
	binary.BigEndian.PutUint32( result, x )
	return result
}

func BytesToU32( data []byte ) (uint32, error) {
	if len(data) != WordSize {
		return 0, ErrInvalidLength
	}
	return binary.BigEndian.Uint32( data ), nil
}

func Concat( arrays ...[]byte ) []byte {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}
	result := make( []byte, 0, total )
	for _, a := range arrays {
		result = append( result, a... )
	}
	return result
}

// reverses data in place. used to turn little endian fields into big endian ones.
func Reverse( data []byte ) {
	for i, j := 0, len(data) - 1; i < j; i, j = i + 1, j - 1 {
		data[i], data[j] = data[j], data[i]
	}
}

/*
 * returns the index of the first occurrence of needle in haystack or NotFound.
 * every position is compared from the start of needle, left to right.
 */
func FindSubsequence( haystack, needle []byte ) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i + len(needle) <= len(haystack); i++ {
		if bytes.Equal( haystack[ i : i + len(needle) ], needle ) {
			return i
		}
	}
	return NotFound
}
