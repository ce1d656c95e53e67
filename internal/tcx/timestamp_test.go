package tcx

import (
	"testing"
	"time"
)

func TestParseTimeFixedOffset(t *testing.T) {
	got, ok := ParseTime("2025-12-07T08:48:35.000+01:00")
	if !ok {
		t.Fatal("expected a parseable timestamp")
	}
	want := time.Date(2025, 12, 7, 7, 48, 35, 0, time.UTC)
	if !got.UTC().Equal(want) {
		t.Errorf("expected %v, got %v", want, got.UTC())
	}
}

func TestParseTimeWithoutFraction(t *testing.T) {
	if _, ok := ParseTime("2025-12-07T08:48:35+01:00"); !ok {
		t.Error("expected timestamps without fractional seconds to parse")
	}
}

func TestParseTimeMalformed(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2025-12-07 08:48:35", "2025-13-40T99:99:99Z"} {
		if _, ok := ParseTime(s); ok {
			t.Errorf("expected %q to be unparseable", s)
		}
	}
}
