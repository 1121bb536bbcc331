package session

import (
	"time"
	_ "time/tzdata"
)

// ReferenceTimezone is the zone all session times are expressed in.
const ReferenceTimezone = "Asia/Kolkata"

// ist is used when the zone database cannot resolve ReferenceTimezone.
var ist = time.FixedZone("IST", 5*3600+30*60)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// LoadLocation resolves name, defaulting to the reference timezone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = ReferenceTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == ReferenceTimezone {
			return ist, nil
		}
		return nil, err
	}
	return loc, nil
}
