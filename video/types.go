package video

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultExtension is the container extension sorted when none is configured
const DefaultExtension = ".mp4"

// Fixed classification keys
const (
	KeyLandscape = "landscape"
	KeyPortrait  = "portrait"
	KeySquare    = "square"
	KeyUnknown   = "unknown"
)

// Resolution is the pixel size of the first video stream of a file
type Resolution struct {
	Width  int
	Height int
}

// String returns the resolution as "WxH"
func (r Resolution) String() string {
	return strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height)
}

// Valid reports whether both dimensions are positive
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Mode selects the rule used to turn a resolution into a folder name
type Mode string

const (
	ModeResolution  Mode = "resolution"  // "1920x1080"
	ModeOrientation Mode = "orientation" // landscape, portrait or square
)

// Modes lists the accepted modes in display order
var Modes = []Mode{ModeResolution, ModeOrientation}

// ParseMode converts user input into a Mode.
// The older "type" name for orientation sorting is still accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resolution", "by-resolution":
		return ModeResolution, nil
	case "orientation", "by-orientation", "type":
		return ModeOrientation, nil
	}
	return "", fmt.Errorf("unknown sort mode %q (want resolution or orientation)", s)
}
