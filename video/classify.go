package video

// Classify returns the folder name for a file.
// A nil or invalid resolution is always "unknown", whatever the mode.
func Classify(res *Resolution, mode Mode) string {
	if res == nil || !res.Valid() {
		return KeyUnknown
	}

	switch mode {
	case ModeOrientation:
		return Orientation(*res)
	default:
		return res.String()
	}
}

// Orientation returns landscape, portrait or square
func Orientation(res Resolution) string {
	switch {
	case res.Width > res.Height:
		return KeyLandscape
	case res.Width < res.Height:
		return KeyPortrait
	default:
		return KeySquare
	}
}
