package config

import (
	"os"
	"strings"
	"path/filepath"
	"gopkg.in/yaml.v3"

	"pixtail/util"
)

/*
 * Settings of the LSB engine. JPEG carriers are lossy: in pixel mode the
 * encoder wipes out most of the embedded bits, so by default the bits go
 * into the quantized DCT coefficients instead.
 */
type LSBConfig struct {
	JpegCoefficients	bool	`yaml:"jpeg_coefficients"`
}

/*
 * Full configuration of the tool.
 */
type FullConfig struct {
	OutputFolder	string		`yaml:"output_folder"`	// empty: next to the source image
	TimeLayout	string		`yaml:"time_layout"`	// go time layout used in output names
	Formats		[]string	`yaml:"formats"`		// enabled image suffixes
	ShredHidden	bool		`yaml:"shred_hidden_files"`	// securely remove a file after hiding it
	Debug		bool		`yaml:"debug"`
	LSB		LSBConfig	`yaml:"lsb"`
	Logger		util.LoggerInfo	`yaml:"logger_config"`
}

func DefaultConfig( folder string ) *FullConfig {
	return &FullConfig{
		OutputFolder: "",
		TimeLayout: util.DefaultTimeLayout,
		Formats: []string{ "jpeg", "jpg", "png", "gif", "bmp" },
		ShredHidden: false,
		LSB: LSBConfig{
			JpegCoefficients: true,
		},
		Logger: util.LoggerInfo{
			Filename: filepath.Join( folder, "log.log" ),
			IsColored: false,
			SaveTime: true,
			Mode: util.Error | util.Warning | util.Info,
		},
	}
}

// checks whether suffix is enabled, case-insensitively
func(c *FullConfig) FormatEnabled( suffix string ) bool {
	for _, f := range c.Formats {
		if strings.EqualFold( strings.TrimPrefix( f, "." ), strings.TrimPrefix( suffix, "." ) ) {
			return true
		}
	}
	return false
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	conf := DefaultConfig( filepath.Dir( filename ) )
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}

// loads the configuration, creating a default one on the first run
func LoadOrCreate( filename string ) (*FullConfig, error) {
	if _, err := os.Stat( filename ); err != nil {
		if err = os.MkdirAll( filepath.Dir( filename ), 0760 ); err != nil {
			return nil, err
		}
		conf := DefaultConfig( filepath.Dir( filename ) )
		if err = SaveConfig( filename, conf ); err != nil {
			return nil, err
		}
		return conf, nil
	}
	return LoadConfig( filename )
}
