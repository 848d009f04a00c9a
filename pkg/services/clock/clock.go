// Package clock supplies the "current instant" the date windows are anchored
// to. Test and debug modes pin the instant so range math is reproducible.
package clock

import (
	"time"
)

// Mode selects how a Clock resolves the current instant.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
	ModeTest        Mode = "test"
)

// anchorHour keeps repeated calls within one day on the same instant.
const anchorHour = 10

// FixedTestInstant is returned by every Clock running in test mode.
var FixedTestInstant = time.Date(2019, time.August, 20, 0, 0, 0, 0, time.UTC)

// debugLayouts are tried in order when parsing a debug override.
var debugLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// Settings configures New.
type Settings struct {
	Mode Mode
	// DebugInstant overrides the instant in development mode when non-empty.
	DebugInstant string
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// New returns the Clock matching settings.
func New(settings Settings) Clock {
	switch {
	case settings.Mode == ModeTest:
		return Fixed(FixedTestInstant)
	case settings.Mode == ModeDevelopment && settings.DebugInstant != "":
		value := settings.DebugInstant
		return Func(func() time.Time {
			return ParseInstant(value)
		})
	default:
		return System(time.Now)
	}
}

// Fixed returns a Clock that always reports t in UTC.
func Fixed(t time.Time) Clock {
	t = t.UTC()
	return Func(func() time.Time {
		return t
	})
}

// System returns a Clock reporting today at 10:00:00.000 UTC, as seen by now.
func System(now func() time.Time) Clock {
	return Func(func() time.Time {
		y, m, d := now().UTC().Date()
		return time.Date(y, m, d, anchorHour, 0, 0, 0, time.UTC)
	})
}

// ParseInstant parses a debug override. Values it cannot parse come back as the
// zero time; callers are not protected from operating on it.
func ParseInstant(value string) time.Time {
	for _, layout := range debugLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
