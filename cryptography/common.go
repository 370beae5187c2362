package cryptography
import (
	"fmt"
	"strings"
	"runtime"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	SymKeySize = chacha20poly1305.KeySize
	NonceSize = chacha20poly1305.NonceSize
	SaltSize = 16
)

/*
 * Used only for local files of the tool itself (the log file).
 * Hidden payloads are never encrypted.
 */

// chacha20poly1305 encryption+authentication, nonce is prepended
func Encrypt( data, key []byte ) ( []byte, error ) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce := make( []byte, NonceSize )
	if _, err := rand.Read( nonce ); err != nil {
		return nil, err
	}
	return aead.Seal( nonce, nonce, data, nil ), nil
}

func Decrypt( data, key []byte ) ( []byte, error ) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	if len(data) < NonceSize {
		return nil, fmt.Errorf("Invalid length of data")
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	return aead.Open( nil, data[:NonceSize], data[NonceSize:], nil )
}

// generate a random amount of bytes
func GenRandom( size uint ) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("GenRandom: Invalid size of random data")
	}
	data := make( []byte, size )
	if _, err := rand.Read( data ); err != nil {
		return nil, err
	}
	return data, nil
}

// hex-encoded sha512 of data, used to fingerprint payloads in logs
func Hash( data []byte ) string {
	hash := sha512.Sum512( data )
	return hex.EncodeToString( hash[:] )
}

// format: <base64-encoded-salt>:<password>
func SplitWithSalt( password string ) ([]byte, []byte, error) {
	salt, pass, found := strings.Cut( password, ":" )
	if !found {
		return nil, nil, fmt.Errorf("no salt supplied")
	}
	saltBytes, err := base64.StdEncoding.DecodeString( salt )
	if err != nil {
		return nil, nil, err
	}
	return []byte( pass ), saltBytes, nil
}

// derive encryption key from password
func DeriveKey( password, saltBytes []byte ) []byte {
	// time=3, memory=32MB as in the argon2 draft recommendations
	threads := uint8(runtime.NumCPU())
	return argon2.IDKey( password, saltBytes, 3, 32 * 1024, threads, SymKeySize )
}
