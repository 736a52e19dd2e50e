package timezone

import (
	"sync"
	"time"

	// backup names must not depend on the host's zoneinfo
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

var cache sync.Map // zone name -> *time.Location

func load(tz string) (*time.Location, bool) {
	if tz == "" {
		return nil, false
	}
	if loc, ok := cache.Load(tz); ok {
		return loc.(*time.Location), true
	}
	loc, err := time.LoadLocation(tz)
	if err != nil || loc == time.Local {
		return nil, false
	}
	cache.Store(tz, loc)
	return loc, true
}

// IsValid reports whether tz names an IANA zone. "" and "Local" are rejected.
func IsValid(tz string) bool {
	_, ok := load(tz)
	return ok
}

// Location returns tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if loc, ok := load(tz); ok {
		return loc
	}
	if loc, ok := load(DefaultTimezone); ok {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
