package screenshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// combination of the 8 byte png signature with the 8 byte IHDR chunk header
var header = []byte("\x89PNG\r\n\x1a\n\u0000\u0000\u0000\rIHDR")

const (
	ihdrLength = 13

	// HeaderSize is the number of leading bytes ParseHeader needs.
	HeaderSize = 16 + ihdrLength

	// a PLTE chunk, if any, starts right after the IHDR payload
	paletteOffset = HeaderSize
)

type ColorType uint8

const (
	GrayScale          ColorType = 0
	TrueColor          ColorType = 2
	IndexColor         ColorType = 3
	GrayScaleWithAlpha ColorType = 4
	TrueColorWithAlpha ColorType = 6
)

func (c ColorType) Known() bool {
	switch c {
	case GrayScale, TrueColor, IndexColor, GrayScaleWithAlpha, TrueColorWithAlpha:
		return true
	}
	return false
}

// HasAlpha reports whether pixels carry an alpha sample. Indexed images may
// still be transparent through a tRNS chunk, which is not looked at.
func (c ColorType) HasAlpha() bool {
	return c == GrayScaleWithAlpha || c == TrueColorWithAlpha
}

func (c ColorType) String() string {
	switch c {
	case GrayScale:
		return "grayscale"
	case TrueColor:
		return "truecolor"
	case IndexColor:
		return "indexed"
	case GrayScaleWithAlpha:
		return "grayscale+alpha"
	case TrueColorWithAlpha:
		return "truecolor+alpha"
	}
	return fmt.Sprintf("unknown(%d)", uint8(c))
}

// Dimensions is wide enough for any size a file name can spell out; sizes
// read from IHDR always fit in 32 bits.
type Dimensions struct {
	Width  uint64
	Height uint64
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Header is the part of the IHDR chunk the validator cares about.
type Header struct {
	Dimensions
	BitDepth  uint8
	ColorType ColorType

	// PaletteOffset is where the PLTE chunk would begin for indexed images,
	// zero otherwise. The palette itself is never read.
	PaletteOffset int
}

// ParseHeader reads the signature and IHDR chunk from the start of buf.
// Compression, filter and interlace bytes are ignored and no CRC is checked.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < len(header) || !bytes.Equal(header, buf[0:len(header)]) {
		return Header{}, ErrNotAPng
	}
	if len(buf) < HeaderSize {
		return Header{}, ErrTruncatedHeader
	}

	ihdr := buf[len(header):HeaderSize]
	h := Header{
		Dimensions: Dimensions{
			Width:  uint64(binary.BigEndian.Uint32(ihdr[0:4])),
			Height: uint64(binary.BigEndian.Uint32(ihdr[4:8])),
		},
		BitDepth:  ihdr[8],
		ColorType: ColorType(ihdr[9]),
	}

	// TODO: look for a tRNS chunk after PLTE to catch transparent palettes;
	// until then indexed screenshots always pass the alpha check.
	if h.ColorType == IndexColor {
		h.PaletteOffset = paletteOffset
	}

	return h, nil
}
