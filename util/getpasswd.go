package util
import (
	"os"
	"fmt"
	"bufio"
	"bytes"
	"golang.org/x/term"
)

// reads a password without echo; piped input is read as a single line
func GetPasswd( prompt string ) ([]byte, error) {
	fd := int( os.Stdin.Fd() )
	if !term.IsTerminal( fd ) {
		line, err := bufio.NewReader( os.Stdin ).ReadBytes( '\n' )
		if err != nil && len(line) == 0 {
			return nil, err
		}
		return bytes.TrimRight( line, "\r\n" ), nil
	}
	fmt.Fprint( os.Stderr, prompt )
	bytepw, err := term.ReadPassword( fd )
	fmt.Fprintln( os.Stderr )
	return bytepw, err
}
