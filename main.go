package main
import (
	"os"
	"fmt"
	"flag"
	"errors"
	"path/filepath"

	"pixtail/util"
	"pixtail/config"
	"pixtail/stegano"
)

const (
	PixtailFolder = ".pixtail"
	ConfigFilename = "config.yaml"
	ConfigEnv = "PIXTAIL_CONFIG"

	MethodLSB = "lsb"
	MethodTail = "tail"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help" {
		help()
		return
	}

	// does not need any configuration
	if os.Args[1] == "gensalt" {
		salt, err := util.GenSalt()
		if err != nil {
			fatal("Failed to generate salt:", err)
		}
		fmt.Println( salt )
		return
	}

	configFile, err := configPath()
	if err != nil {
		fatal("Failed to locate configuration:", err)
	}
	conf, err := config.LoadOrCreate( configFile )
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	util.DebugMode = conf.Debug
	logger := util.NewLogger( &conf.Logger )
	s := stegano.New( conf, logger )

	args := os.Args[2:]
	switch os.Args[1] {
	case "hide-file":
		method, rest := parseMethod( "hide-file", args, 2 )
		var output string
		if method == MethodLSB {
			output, err = s.HideFileLSB( rest[0], rest[1] )
		} else {
			output, err = s.HideFileTail( rest[0], rest[1] )
		}
		check( logger, "Failed to hide file:", err )
		fmt.Println( output )
	case "hide-string":
		method, rest := parseMethod( "hide-string", args, 2 )
		var output string
		if method == MethodLSB {
			output, err = s.HideStringLSB( rest[0], rest[1] )
		} else {
			output, err = s.HideStringTail( rest[0], rest[1] )
		}
		check( logger, "Failed to hide string:", err )
		fmt.Println( output )
	case "extract-file":
		method, rest := parseMethod( "extract-file", args, 1 )
		var output string
		if method == MethodLSB {
			output, err = s.ExtractFileLSB( rest[0] )
		} else {
			output, err = s.ExtractFileTail( rest[0] )
		}
		check( logger, "Failed to extract file:", err )
		fmt.Println( output )
	case "extract-string":
		method, rest := parseMethod( "extract-string", args, 1 )
		var text string
		if method == MethodLSB {
			text, err = s.ExtractStringLSB( rest[0] )
		} else {
			text, err = s.ExtractStringTail( rest[0] )
		}
		check( logger, "Failed to extract string:", err )
		fmt.Println( text )
	case "capacity":
		if len(args) != 1 {
			help()
			return
		}
		capacity, err := s.Capacity( args[0] )
		check( logger, "Failed to compute capacity:", err )
		fmt.Printf("%d bytes\n", capacity)
	case "readlog":
		var password []byte
		if conf.Logger.IsEncrypted {
			if password, err = util.GetPasswd("Log password: "); err != nil {
				fatal("Failed to read password from stdin:", err)
			}
		}
		if err = util.ReadLog( &conf.Logger, password ); err != nil {
			fatal("Failed to read log file:", err)
		}
	default:
		help()
	}
}

// PIXTAIL_CONFIG wins over ~/.pixtail/config.yaml
func configPath() (string, error) {
	if path := os.Getenv( ConfigEnv ); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join( home, PixtailFolder, ConfigFilename ), nil
}

// parses -method and checks the number of positional arguments
func parseMethod( command string, args []string, positional int ) (string, []string) {
	fs := flag.NewFlagSet( command, flag.ContinueOnError )
	method := fs.String( "method", MethodLSB, "lsb or tail" )
	if err := fs.Parse( args ); err != nil {
		if errors.Is( err, flag.ErrHelp ) {
			os.Exit(0)
		}
		fatal( err )
	}
	if *method != MethodLSB && *method != MethodTail {
		fatal( "Unknown method:", *method )
	}
	if fs.NArg() != positional {
		help()
		os.Exit(-1)
	}
	return *method, fs.Args()
}

func check( logger *util.Logger, msg string, err error ) {
	if err != nil {
		logger.LogError( err )
		fatal( msg, err )
	}
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./pixtail <command> [arguments]

The following commands are supported:
	hide-file [-method lsb|tail] <image> <file>	hide a file in a copy of the image
	hide-string [-method lsb|tail] <image> <text>	hide a string in a copy of the image
	extract-file [-method lsb|tail] <image>		extract a hidden file next to the image
	extract-string [-method lsb|tail] <image>	print a hidden string
	capacity <image>				longest string lsb can hide in the image
	readlog						read log file
	gensalt						generate base64-encoded salt for the log password
	help						print this message

Configuration is read from $PIXTAIL_CONFIG or ~/.pixtail/config.yaml.
`

	fmt.Printf("%s", line)
}
