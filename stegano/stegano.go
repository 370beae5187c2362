package stegano
import (
	"fmt"
	"time"
	"path/filepath"

	"pixtail/util"
	"pixtail/config"
	"pixtail/cryptography"
	"pixtail/stegano/img"
	steg "pixtail/stegano/util"
)

/*
 * Stego hides payloads in images and recovers them. Two methods exist:
 * LSB (bits of the pixel channels, or of the DCT coefficients of a jpeg)
 * and tail (bytes appended after the end of image data). Each one works
 * with files (name and content) and with strings.
 *
 * Now is used for output names only; tests replace it.
 */
type Stego struct {
	Conf	*config.FullConfig
	Logger	*util.Logger
	Now	func() time.Time
}

func New( conf *config.FullConfig, logger *util.Logger ) *Stego {
	return &Stego{ conf, logger, time.Now }
}

// format by suffix, restricted to the enabled ones
func(s *Stego) format( image string ) (img.Format, error) {
	suffix := util.Suffix( image )
	if !s.Conf.FormatEnabled( suffix ) {
		return nil, &img.UnsupportedFormatError{ Suffix: suffix }
	}
	return img.ParseFormat( suffix )
}

func(s *Stego) outputName( image string ) string {
	return util.OutputName( image, s.Conf.OutputFolder, s.Conf.TimeLayout, s.Now() )
}

func(s *Stego) folder( image string ) string {
	if s.Conf.OutputFolder != "" {
		return s.Conf.OutputFolder
	}
	return filepath.Dir( image )
}

func(s *Stego) useCoefficients( format img.Format ) bool {
	return format == img.JPEG && s.Conf.LSB.JpegCoefficients
}

func fileEnvelope( file string ) ([]byte, error) {
	content, err := util.ReadFile( file )
	if err != nil {
		return nil, err
	}
	return steg.EncodeFile( []byte( filepath.Base( file ) ), content )
}

// text is framed as its UTF-8 bytes, unchanged
func stringEnvelope( text string ) ([]byte, error) {
	return steg.EncodeString( []byte(text) )
}

/*
 * LSB
 */
func(s *Stego) hideLSB( image string, envelope []byte ) (string, error) {
	format, err := s.format( image )
	if err != nil {
		return "", err
	}
	data, err := util.ReadFile( image )
	if err != nil {
		return "", err
	}

	var result []byte
	if s.useCoefficients( format ) {
		result, err = img.HideInJpeg( data, envelope )
		if err != nil {
			return "", err
		}
	} else {
		pixels, err := img.DecodePixels( data )
		if err != nil {
			return "", err
		}
		if pixels.Format != format {
			s.Logger.LogWarning( fmt.Sprintf("%s is a %s image, suffix says %s",
				image, pixels.Format.Name(), format.Name()) )
		}
		if _, err = img.EmbedLSB( pixels.Data, envelope ); err != nil {
			return "", err
		}
		if result, err = pixels.Encode(); err != nil {
			return "", err
		}
	}

	output := s.outputName( image )
	if err = util.WriteFile( output, result ); err != nil {
		return "", err
	}
	s.Logger.LogInfo( fmt.Sprintf("lsb: hid %d bytes in %s -> %s", len(envelope), util.FixUnicode( image ), output) )
	return output, nil
}

// raw LSB content of the image: envelope followed by noise
func(s *Stego) revealLSB( image string ) ([]byte, error) {
	format, err := s.format( image )
	if err != nil {
		return nil, err
	}
	data, err := util.ReadFile( image )
	if err != nil {
		return nil, err
	}
	if s.useCoefficients( format ) {
		return img.RevealFromJpeg( data )
	}
	pixels, err := img.DecodePixels( data )
	if err != nil {
		return nil, err
	}
	return img.ExtractLSB( pixels.Data ), nil
}

func(s *Stego) HideFileLSB( image, file string ) (string, error) {
	envelope, err := fileEnvelope( file )
	if err != nil {
		return "", err
	}
	output, err := s.hideLSB( image, envelope )
	if err != nil {
		return "", err
	}
	s.afterHide( file, envelope )
	return output, nil
}

func(s *Stego) HideStringLSB( image, text string ) (string, error) {
	envelope, err := stringEnvelope( text )
	if err != nil {
		return "", err
	}
	return s.hideLSB( image, envelope )
}

func(s *Stego) ExtractFileLSB( image string ) (string, error) {
	raw, err := s.revealLSB( image )
	if err != nil {
		return "", err
	}
	return s.saveFile( image, raw )
}

func(s *Stego) ExtractStringLSB( image string ) (string, error) {
	raw, err := s.revealLSB( image )
	if err != nil {
		return "", err
	}
	text, err := steg.DecodeString( raw )
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// the longest string (in bytes) LSB can hide in the image
func(s *Stego) Capacity( image string ) (int, error) {
	format, err := s.format( image )
	if err != nil {
		return 0, err
	}
	data, err := util.ReadFile( image )
	if err != nil {
		return 0, err
	}
	var capacity int
	if s.useCoefficients( format ) {
		if capacity, err = img.JpegCapacity( data ); err != nil {
			return 0, err
		}
	} else {
		pixels, err := img.DecodePixels( data )
		if err != nil {
			return 0, err
		}
		capacity = pixels.Capacity()
	}
	return max( capacity - steg.WordSize, 0 ), nil
}

/*
 * Tail
 */
func(s *Stego) hideTail( image string, envelope []byte ) (string, error) {
	format, err := s.format( image )
	if err != nil {
		return "", err
	}
	data, err := util.ReadFile( image )
	if err != nil {
		return "", err
	}
	result, err := img.EmbedTail( data, format, envelope )
	if err != nil {
		return "", err
	}
	output := s.outputName( image )
	if err = util.WriteFile( output, result ); err != nil {
		return "", err
	}
	s.Logger.LogInfo( fmt.Sprintf("tail: hid %d bytes in %s -> %s", len(envelope), util.FixUnicode( image ), output) )
	return output, nil
}

func(s *Stego) revealTail( image string ) ([]byte, error) {
	format, err := s.format( image )
	if err != nil {
		return nil, err
	}
	data, err := util.ReadFile( image )
	if err != nil {
		return nil, err
	}
	return img.ExtractTail( data, format )
}

func(s *Stego) HideFileTail( image, file string ) (string, error) {
	envelope, err := fileEnvelope( file )
	if err != nil {
		return "", err
	}
	output, err := s.hideTail( image, envelope )
	if err != nil {
		return "", err
	}
	s.afterHide( file, envelope )
	return output, nil
}

func(s *Stego) HideStringTail( image, text string ) (string, error) {
	envelope, err := stringEnvelope( text )
	if err != nil {
		return "", err
	}
	return s.hideTail( image, envelope )
}

func(s *Stego) ExtractFileTail( image string ) (string, error) {
	envelope, err := s.revealTail( image )
	if err != nil {
		return "", err
	}
	return s.saveFile( image, envelope )
}

func(s *Stego) ExtractStringTail( image string ) (string, error) {
	envelope, err := s.revealTail( image )
	if err != nil {
		return "", err
	}
	text, err := steg.DecodeString( envelope )
	if err != nil {
		return "", err
	}
	return string(text), nil
}

/*
 * common parts
 */

// writes the file carried by envelope next to the image (or into the output folder)
func(s *Stego) saveFile( image string, envelope []byte ) (string, error) {
	name, content, err := steg.DecodeFile( envelope )
	if err != nil {
		return "", err
	}
	base, ok := util.SafeName( string(name) )
	if !ok {
		return "", fmt.Errorf("%w: invalid file name %q", steg.ErrMalformedEnvelope, name)
	}
	output := filepath.Join( s.folder( image ), base )
	if util.FileExists( output ) {
		s.Logger.LogWarning( "overwriting " + output )
	}
	if err = util.WriteFile( output, content ); err != nil {
		return "", err
	}
	s.Logger.LogInfo( fmt.Sprintf("extracted %s (%d bytes, sha512 %.16s) from %s",
		util.FixUnicode( output ), len(content), cryptography.Hash( content ), image) )
	return output, nil
}

func(s *Stego) afterHide( file string, envelope []byte ) {
	util.DebugPrintln( "envelope fingerprint:", cryptography.Hash( envelope ) )
	if !s.Conf.ShredHidden {
		return
	}
	if err := util.ShredFile( file ); err != nil {
		s.Logger.LogError( fmt.Errorf("failed to shred %s: %w", file, err) )
	}
}
