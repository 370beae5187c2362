package util
import (
	"os"
	"fmt"
	"strconv"
	"encoding/base64"
	"pixtail/cryptography"
)

const (
	ShredCount = 10
)

/*
 * prints the log file. Plain logs are printed as they are, encrypted ones
 * are decrypted with the password (salt comes from the logger settings).
 */
func ReadLog( li *LoggerInfo, password []byte ) error {
	data, err := os.ReadFile( li.Filename )
	if err != nil {
		return fmt.Errorf("Failed to read file: %s", err.Error())
	}
	if li.IsEncrypted == false {
		fmt.Println( string(data) )
		return nil
	}

	_, saltBytes, err := cryptography.SplitWithSalt( li.Password )
	if err != nil {
		return fmt.Errorf("Failed to get salt of the log: %s", err.Error())
	}
	key := cryptography.DeriveKey( password, saltBytes )
	logs, err := cryptography.Decrypt( data, key )
	if err != nil {
		// logs are unencrypted?
		for _, run := range string(data) {
			if strconv.IsPrint( run ) == false && run != '\n' {
				return fmt.Errorf("Failed to decrypt logs: invalid password.")
			}
		}
		logs = data
	}
	fmt.Println( string(logs) )
	return nil
}

func GenSalt() (string, error) {
	saltBytes, err := cryptography.GenRandom( cryptography.SaltSize )
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString( saltBytes ), nil
}

// overwrites the file with random bytes several times and removes it
func ShredFile( filename string ) error {
	info, err := os.Stat( filename )
	if err != nil {
		return err
	}
	var finalError error
	if info.Size() > 0 {
		for i := 0; i < ShredCount; i++ {
			content, err := cryptography.GenRandom( uint(info.Size()) )
			if err == nil {
				err = os.WriteFile( filename, content, 0660 )
			}
			if err != nil {
				finalError = err
			}
		}
	}
	if err = os.Remove( filename ); err != nil {
		finalError = err
	}
	return finalError
}
