package options

import (
	"testing"
	"time"

	"tableflip.dev/roundtrip/pkg/dates"
)

func TestGetOn(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.December, 5, 12, 0, 0, 0, time.Local) }

	cases := []struct {
		in   string
		want dates.Date
	}{
		{"", dates.Date{}},
		{"2024-2-28", dates.New(2024, time.February, 28)},
		{"12/20", dates.New(2024, time.December, 20)},
		{"1/3", dates.New(2025, time.January, 3)},
	}
	for _, tc := range cases {
		o := &OnOptions{OnString: tc.in}
		got, err := o.GetOn(now)
		if err != nil {
			t.Fatalf("GetOn(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("GetOn(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	o := &OnOptions{OnString: "someday"}
	if _, err := o.GetOn(now); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}
