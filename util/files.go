package util
import (
	"os"
	"fmt"
)

/*
 * whole-file helpers. Errors are wrapped, never swallowed; a failed write
 * leaves the destination in an unknown state.
 */
func ReadFile( filename string ) ([]byte, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s: %w", filename, err)
	}
	return data, nil
}

func WriteFile( filename string, data []byte ) error {
	if err := os.WriteFile( filename, data, 0660 ); err != nil {
		return fmt.Errorf("Failed to write %s: %w", filename, err)
	}
	return nil
}

func FileExists( filename string ) bool {
	_, err := os.Stat( filename )
	return err == nil
}
