package screenshot

import (
	"regexp"
	"strconv"
)

// W<w>xH<h> binds width1/height1, H<h>xW<w> binds height2/width2. The
// separator is either an ascii x or a multiplication sign.
var sizeRegex = regexp.MustCompile(`^.*_(?:W(?P<width1>[0-9]+)|H(?P<height2>[0-9]+))(?:x|×)(?:W(?P<width2>[0-9]+)|H(?P<height1>[0-9]+)).*\.png$`)

var (
	width1  = sizeRegex.SubexpIndex("width1")
	height1 = sizeRegex.SubexpIndex("height1")
	width2  = sizeRegex.SubexpIndex("width2")
	height2 = sizeRegex.SubexpIndex("height2")
)

// SizeFromFileName returns the size encoded in a name such as
// "home_W1242xH2688.png" or "home_H2688xW1242.png". Exactly one width and
// one height token must be present.
func SizeFromFileName(name string) (Dimensions, error) {
	match := sizeRegex.FindStringSubmatch(name)
	if match == nil {
		return Dimensions{}, &FileNameError{FileName: name}
	}

	var width, height string
	switch {
	case match[width1] != "" && match[height1] != "" && match[width2] == "" && match[height2] == "":
		width, height = match[width1], match[height1]
	case match[width1] == "" && match[height1] == "" && match[width2] != "" && match[height2] != "":
		width, height = match[width2], match[height2]
	default:
		return Dimensions{}, &FileNameError{FileName: name}
	}

	w, err := strconv.ParseUint(width, 10, 64)
	if err != nil {
		return Dimensions{}, &FileNameError{FileName: name, Err: err}
	}
	h, err := strconv.ParseUint(height, 10, 64)
	if err != nil {
		return Dimensions{}, &FileNameError{FileName: name, Err: err}
	}

	return Dimensions{Width: w, Height: h}, nil
}
