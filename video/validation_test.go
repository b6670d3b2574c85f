package video

import (
	"testing"
)

func TestHasExtension(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		ext      string
		expected bool
	}{
		{"MP4 lowercase", "test.mp4", ".mp4", true},
		{"MP4 uppercase", "test.MP4", ".mp4", true},
		{"MP4 mixed case", "test.Mp4", ".mp4", true},
		{"Uppercase configured extension", "test.mp4", ".MP4", true},

		{"Full path MP4", "/path/to/video.mp4", ".mp4", true},
		{"Multiple dots", "test.video.mp4", ".mp4", true},
		{"Hidden file", ".hidden.mp4", ".mp4", true},
		{"Space in name", "test file.mp4", ".mp4", true},

		{"MKV is not MP4", "test.mkv", ".mp4", false},
		{"Text file", "test.txt", ".mp4", false},
		{"No extension", "test", ".mp4", false},
		{"Extension in the middle", "test.mp4.part", ".mp4", false},
		{"Empty string", "", ".mp4", false},
		{"Empty extension", "test.mp4", "", false},

		{"Other container", "clip.MOV", ".mov", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HasExtension(tt.path, tt.ext)
			if result != tt.expected {
				t.Errorf("HasExtension(%q, %q) = %v, expected %v", tt.path, tt.ext, result, tt.expected)
			}
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"", ".mp4", false},
		{".mp4", ".mp4", false},
		{"mp4", ".mp4", false},
		{".MOV", ".mov", false},
		{" mkv ", ".mkv", false},
		{".", "", true},
		{"a/b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ext, err := NormalizeExtension(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeExtension(%q) expected error, got %q", tt.input, ext)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeExtension(%q) unexpected error: %v", tt.input, err)
			}
			if ext != tt.expected {
				t.Errorf("NormalizeExtension(%q) = %q, expected %q", tt.input, ext, tt.expected)
			}
		})
	}
}
