package screenshot

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFileName      = errors.New("invalid file name")
	ErrNotAPng              = errors.New("not a png file")
	ErrTruncatedHeader      = errors.New("truncated ihdr chunk")
	ErrUnexpectedSize       = errors.New("unexpected size")
	ErrContainsAlphaChannel = errors.New("contains alpha channel")
)

// FileNameError is returned when a name carries no unambiguous size token.
type FileNameError struct {
	FileName string
	Err      error // set when a dimension does not fit in 64 bits
}

func (e *FileNameError) Error() string {
	return fmt.Sprintf("invalid file name: %s", e.FileName)
}

func (e *FileNameError) Is(target error) bool { return target == ErrInvalidFileName }

func (e *FileNameError) Unwrap() error { return e.Err }

// DataError wraps ErrNotAPng or ErrTruncatedHeader with the offending path.
type DataError struct {
	Path string
	Err  error
}

func (e *DataError) Error() string {
	if errors.Is(e.Err, ErrTruncatedHeader) {
		return fmt.Sprintf("invalid data: %q is not a valid png file: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid data: %q is not a valid png file", e.Path)
}

func (e *DataError) Unwrap() error { return e.Err }

type SizeError struct {
	FileName string
	Expected Dimensions
	Actual   Dimensions
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("unexpected size of %q: expected %s, actual %s", e.FileName, e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error { return ErrUnexpectedSize }

type AlphaError struct {
	FileName  string
	ColorType ColorType
}

func (e *AlphaError) Error() string {
	return fmt.Sprintf("%q contains alpha channel (%s)", e.FileName, e.ColorType)
}

func (e *AlphaError) Unwrap() error { return ErrContainsAlphaChannel }
