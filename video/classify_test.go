package video

import (
	"fmt"
	"strconv"
	"testing"
)

func TestClassify_Orientation(t *testing.T) {
	tests := []struct {
		name     string
		res      Resolution
		expected string
	}{
		{"Full HD", Resolution{1920, 1080}, KeyLandscape},
		{"Wider by one", Resolution{721, 720}, KeyLandscape},
		{"Vertical phone video", Resolution{1080, 1920}, KeyPortrait},
		{"Taller by one", Resolution{720, 721}, KeyPortrait},
		{"Square", Resolution{1080, 1080}, KeySquare},
		{"Tiny square", Resolution{1, 1}, KeySquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.res
			if got := Classify(&res, ModeOrientation); got != tt.expected {
				t.Errorf("Classify(%v, orientation) = %q, expected %q", tt.res, got, tt.expected)
			}
		})
	}
}

func TestClassify_OrientationExhaustive(t *testing.T) {
	for w := 1; w <= 40; w++ {
		for h := 1; h <= 40; h++ {
			res := Resolution{Width: w, Height: h}
			got := Classify(&res, ModeOrientation)

			var want string
			switch {
			case w > h:
				want = KeyLandscape
			case w < h:
				want = KeyPortrait
			default:
				want = KeySquare
			}
			if got != want {
				t.Fatalf("Classify(%dx%d, orientation) = %q, expected %q", w, h, got, want)
			}
		}
	}
}

func TestClassify_Resolution(t *testing.T) {
	sizes := [][2]int{{1920, 1080}, {1080, 1920}, {640, 360}, {1, 1}, {7680, 4320}, {10, 100}}

	for _, size := range sizes {
		res := Resolution{Width: size[0], Height: size[1]}
		want := strconv.Itoa(size[0]) + "x" + strconv.Itoa(size[1])

		got := Classify(&res, ModeResolution)
		if got != want {
			t.Errorf("Classify(%v, resolution) = %q, expected %q", res, got, want)
		}
		if got != fmt.Sprintf("%dx%d", size[0], size[1]) {
			t.Errorf("Classify(%v, resolution) = %q has unexpected formatting", res, got)
		}
	}
}

func TestClassify_MissingResolution(t *testing.T) {
	for _, mode := range Modes {
		if got := Classify(nil, mode); got != KeyUnknown {
			t.Errorf("Classify(nil, %s) = %q, expected %q", mode, got, KeyUnknown)
		}

		invalid := Resolution{Width: 0, Height: 1080}
		if got := Classify(&invalid, mode); got != KeyUnknown {
			t.Errorf("Classify(%v, %s) = %q, expected %q", invalid, mode, got, KeyUnknown)
		}
	}
}
