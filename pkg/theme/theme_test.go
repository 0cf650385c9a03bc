package theme

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#292929", Hex(0x292929)},
		{"0xf0f0ea", Hex(0xf0f0ea)},
		{"#ff000080", RGBA8(0xff, 0, 0, 0x80)},
		{"white", RGB(0xff, 0xff, 0xff)},
		{"DarkSlateGray", RGB(0x2f, 0x4f, 0x4f)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12345", "#zzzzzz", "notacolour"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = Hex(0x404048)
	r, g, b, a := c.RGBA()
	if r>>8 != 0x40 || g>>8 != 0x40 || b>>8 != 0x48 || a != 0xffff {
		t.Errorf("unexpected RGBA %x %x %x %x", r, g, b, a)
	}
	if got := Hex(0x404048).String(); got != "#404048" {
		t.Errorf("String() = %q", got)
	}
}

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if th.WindowBackground != Hex(0x292929) {
		t.Errorf("unexpected background %v", th.WindowBackground)
	}
	if th.LineHeight() != 18 {
		t.Errorf("expected line height 18, got %v", th.LineHeight())
	}
}
