package util
import (
	"time"
	"strings"
	"path/filepath"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultTimeLayout = "06-01-02_150405"	// yy-MM-dd_HHmmss
)

// NFC form of a name for log lines; payloads keep their own bytes
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

// suffix of the file without the dot, as written
func Suffix( filename string ) string {
	return strings.TrimPrefix( filepath.Ext( filename ), "." )
}

func Stem( filename string ) string {
	base := filepath.Base( filename )
	return strings.TrimSuffix( base, filepath.Ext( base ) )
}

/*
 * builds <folder>/<stem>_<timestamp>.<suffix> for image. An empty folder
 * means the folder of image itself.
 */
func OutputName( image, folder, layout string, now time.Time ) string {
	if folder == "" {
		folder = filepath.Dir( image )
	}
	if layout == "" {
		layout = DefaultTimeLayout
	}
	name := Stem( image ) + "_" + now.Format( layout )
	if suffix := Suffix( image ); suffix != "" {
		name += "." + suffix
	}
	return filepath.Join( folder, name )
}

// strips any directory components a hidden name may carry
func SafeName( name string ) (string, bool) {
	name = filepath.Base( filepath.Clean( "/" + strings.ReplaceAll( name, "\\", "/" ) ) )
	if name == "/" || name == "." || name == ".." || name == "" {
		return "", false
	}
	return name, true
}
