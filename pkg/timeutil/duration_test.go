package timeutil

import (
	"testing"
)

func TestParseDayOffset(t *testing.T) {
	cases := map[string]int{
		"3":     3,
		"+3":    3,
		"-1":    -1,
		"2d":    2,
		"-1w":   -7,
		"1w2d":  9,
		"+2wks": 14,
		" 0 ":   0,
	}
	for in, want := range cases {
		got, err := ParseDayOffset(in)
		if err != nil {
			t.Fatalf("ParseDayOffset(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDayOffset(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseDayOffsetInvalid(t *testing.T) {
	for _, in := range []string{"", "-", "soon", "3h", "1w-2d"} {
		if _, err := ParseDayOffset(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatDayOffset(t *testing.T) {
	cases := map[int]string{
		0:  "0d",
		1:  "+1d",
		-1: "-1d",
		7:  "+1w",
		-9: "-1w2d",
		14: "+2w",
	}
	for in, want := range cases {
		if got := FormatDayOffset(in); got != want {
			t.Fatalf("FormatDayOffset(%d) = %q, want %q", in, got, want)
		}
	}
}
