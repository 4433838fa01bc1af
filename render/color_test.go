package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"black", color.RGBA{0, 0, 0, 0xff}},
		{"cyan", color.RGBA{0, 0xff, 0xff, 0xff}},
		{"Cyan", color.RGBA{0, 0xff, 0xff, 0xff}},
		{" white ", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#ff8000", color.RGBA{0xff, 0x80, 0x00, 0xff}},
		{"#000000", color.RGBA{0, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "chartreuse-ish", "#12345", "#gggggg", "123456"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrBadColor", in, err)
		}
	}
}
