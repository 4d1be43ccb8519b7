// Package screenshot checks that PNG screenshots have the size their file name
// promises and carry no alpha channel. It only ever looks at the first
// HeaderSize bytes of a file and performs no I/O of its own.
package screenshot

import "path/filepath"

// Validator holds optional hooks; the zero value is ready to use.
type Validator struct {
	// OnFile is called with the base name of every file before it is checked.
	OnFile func(name string)
}

// Validate checks one screenshot. buf needs to hold at least the first
// HeaderSize bytes of the file. A nil error means the screenshot is valid.
func (v Validator) Validate(path string, buf []byte) error {
	name := filepath.Base(path)
	if v.OnFile != nil {
		v.OnFile(name)
	}

	expected, err := SizeFromFileName(name)
	if err != nil {
		return err
	}

	h, err := ParseHeader(buf)
	if err != nil {
		return &DataError{Path: path, Err: err}
	}

	if h.Dimensions != expected {
		return &SizeError{FileName: name, Expected: expected, Actual: h.Dimensions}
	}

	// indexed images fall through here, see ParseHeader
	if h.ColorType.HasAlpha() {
		return &AlphaError{FileName: name, ColorType: h.ColorType}
	}

	return nil
}

// Validate checks one screenshot with a zero Validator.
func Validate(path string, buf []byte) error {
	return Validator{}.Validate(path, buf)
}
