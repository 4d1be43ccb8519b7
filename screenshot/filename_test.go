package screenshot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeFromFileName(t *testing.T) {
	tests := []struct {
		name string
		want Dimensions
	}{
		{"screen_W100xH200.png", Dimensions{100, 200}},
		{"screen_H200xW100.png", Dimensions{100, 200}},
		{"screen_W100×H200.png", Dimensions{100, 200}},
		{"screen_H200×W100.png", Dimensions{100, 200}},
		{"01_home_W1242xH2688_dark.png", Dimensions{1242, 2688}},
		{"_W0xH0.png", Dimensions{0, 0}},
		{"a_b_W007xH08.png", Dimensions{7, 8}},
		{"home_W1xH2_W3xH4.png", Dimensions{3, 4}},
		{"screen_W4294967295xH1.png", Dimensions{4294967295, 1}},
		{"screen_W4294967296xH1.png", Dimensions{4294967296, 1}},
		{"screen_W1xH18446744073709551615.png", Dimensions{1, 18446744073709551615}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SizeFromFileName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeFromFileName_BothOrders(t *testing.T) {
	for _, size := range []Dimensions{{0, 0}, {1, 1}, {320, 480}, {2688, 1242}, {65536, 3}} {
		for _, sep := range []string{"x", "×"} {
			widthFirst := fmt.Sprintf("name_W%d%sH%d.png", size.Width, sep, size.Height)
			heightFirst := fmt.Sprintf("name_H%d%sW%d.png", size.Height, sep, size.Width)

			got, err := SizeFromFileName(widthFirst)
			require.NoError(t, err, widthFirst)
			assert.Equal(t, size, got, widthFirst)

			got, err = SizeFromFileName(heightFirst)
			require.NoError(t, err, heightFirst)
			assert.Equal(t, size, got, heightFirst)
		}
	}
}

func TestSizeFromFileName_Invalid(t *testing.T) {
	names := []string{
		"",
		"icon.png",
		"screen_W100xH200",
		"screen_W100xH200.jpg",
		"screen_W100xH200.PNG",
		"screen_W100xH200.png.bak",
		"screenW100xH200.png",
		"screen_W100XH200.png",
		"screen_w100xh200.png",
		"screen_W100xW200.png",
		"screen_H100xH200.png",
		"screen_W100H200.png",
		"screen_W100x.png",
		"screen_WxH.png",
		"screen_W18446744073709551616xH1.png",
		"screen_W1xH99999999999999999999.png",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := SizeFromFileName(name)
			assert.ErrorIs(t, err, ErrInvalidFileName)

			var fnErr *FileNameError
			require.ErrorAs(t, err, &fnErr)
			assert.Equal(t, name, fnErr.FileName)
		})
	}
}
