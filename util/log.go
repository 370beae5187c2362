package util
import (
	"os"
	"sync"
	"time"
	"pixtail/cryptography"
)

/*
 * a custom leveled logger. Lines are appended to a file, optionally
 * colorized and optionally encrypted as a whole.
 */
const (
	Error = 1
	Warning = 2
	Info = 4

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	GreenColor = "\033[32m"
	CyanColor = "\033[36m"
	ResetColor = "\033[0m"
)

type LoggerInfo struct {
	Filename	string		`yaml:"filename"`
	Password	string		`yaml:"password"`	// <base64 salt>:<password>, used if encrypted
	IsEncrypted	bool		`yaml:"is_encrypted"`
	IsColored	bool		`yaml:"is_colored"`
	SaveTime	bool		`yaml:"save_time"`
	Mode		uint8		`yaml:"mode"`
}

type Logger struct {
	li		*LoggerInfo
	key		[]byte
	mtx		sync.Mutex
}

func NewLogger( li *LoggerInfo ) *Logger {
	l := &Logger{ li: li }
	if li.IsEncrypted {
		pass, saltBytes, err := cryptography.SplitWithSalt( li.Password )
		if err == nil {
			l.key = cryptography.DeriveKey( pass, saltBytes )
		}
	}
	return l
}

func(l *Logger) colorize( line string, color string ) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func(l *Logger) prepareString( str string, clr string ) string {
	toWrite := l.colorize( str, clr ) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format( time.RFC3339 ) + " "
	}
	return toWrite
}

func(l *Logger) LogString( s string ) {
	if l.li.Filename == "" {
		return
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.li.IsEncrypted == false {
		// just append line
		f, err := os.OpenFile( l.li.Filename, os.O_APPEND | os.O_CREATE | os.O_WRONLY, 0600 )
		if err == nil {
			defer f.Close()
			f.WriteString( s + "\n" )
		}
		return
	}
	if l.key == nil {
		// broken password, refuse to write plaintext into an encrypted log
		return
	}
	// the whole log is one ciphertext: decrypt, append, encrypt back
	data, err := os.ReadFile( l.li.Filename )
	if err != nil && !os.IsNotExist( err ) {
		return
	}
	currentLog, err := cryptography.Decrypt( data, l.key )
	if err != nil {
		return
	}
	newData := append( currentLog, []byte(s + "\n")... )
	newData, err = cryptography.Encrypt( newData, l.key )
	if err == nil {
		os.WriteFile( l.li.Filename, newData, 0600 )
	}
}

func(l *Logger) LogError( err error ) {
	if l.li.Mode & Error == Error {
		toWrite := l.prepareString("[ERROR]", RedColor) + err.Error()
		l.LogString( toWrite )
	}
}

func(l *Logger) LogWarning( warning string ) {
	if l.li.Mode & Warning == Warning {
		toWrite := l.prepareString("[WARNING]", YellowColor) + warning
		l.LogString( toWrite )
	}
}

func(l *Logger) LogInfo( info string ) {
	if l.li.Mode & Info == Info {
		toWrite := l.prepareString( "[INFO]", CyanColor ) + info
		l.LogString( toWrite )
	}
}
