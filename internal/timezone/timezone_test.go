package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	for _, tz := range []string{"UTC", "America/Sao_Paulo", "Europe/Lisbon"} {
		if !IsValid(tz) {
			t.Fatalf("expected %s to be valid", tz)
		}
	}
	for _, tz := range []string{"", "Local", "Not/AZone"} {
		if IsValid(tz) {
			t.Fatalf("expected %q to be rejected", tz)
		}
	}
}

func TestLocationFallsBack(t *testing.T) {
	if loc := Location("UTC"); loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", loc)
	}
	for _, tz := range []string{"", "Local", "Not/AZone"} {
		loc := Location(tz)
		if loc.String() != DefaultTimezone {
			t.Fatalf("Location(%q) = %s, want %s", tz, loc, DefaultTimezone)
		}
		if loc == time.Local {
			t.Fatalf("Location(%q) resolved to the process local zone", tz)
		}
	}
	if Location("Europe/Lisbon") != Location("Europe/Lisbon") {
		t.Fatal("expected cached location to be reused")
	}
}

func TestNowIn(t *testing.T) {
	if got := NowIn("UTC").Location().String(); got != "UTC" {
		t.Fatalf("expected time in UTC, got %s", got)
	}
}
