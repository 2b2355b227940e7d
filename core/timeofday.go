package core

import "errors"

// Time-of-day register constants
const (
	TicksPerSecond = 16    // Input register resolution (1/16 s)
	TickShift      = 4     // log2(TicksPerSecond)
	TickHalf       = 8     // Added before the shift to round half up
	SecondsPerDay  = 86400 // Seconds from midnight to midnight
	SecondsPerHour = 3600
	SecondsPerMin  = 60
	NoonSeconds    = 12 * SecondsPerHour

	// MaxTimeOfDayTicks is the largest valid input register value (inclusive)
	MaxTimeOfDayTicks = TicksPerSecond * SecondsPerDay
)

var (
	// ErrOutOfRangeInput is returned when the input register is negative or past end of day
	ErrOutOfRangeInput = errors.New("time-of-day register out of range")

	// ErrInvalidTimeValue is returned when a time value fails the display encoder bounds check
	ErrInvalidTimeValue = errors.New("invalid time value")
)

// Meridiem is the AM/PM designation as stored in the register contract
type Meridiem int32

const (
	AM Meridiem = 1
	PM Meridiem = 2
)

func (m Meridiem) String() string {
	switch m {
	case AM:
		return "AM"
	case PM:
		return "PM"
	default:
		return "?"
	}
}

// TimeOfDay is a decoded time-of-day register value on a 12-hour clock
type TimeOfDay struct {
	DaySeconds int32 // Seconds since midnight
	Hours      int32 // 1-12
	Minutes    int32 // 0-59
	Seconds    int32 // 0-59
	Meridiem   Meridiem
}

// DecodeTimeOfDay converts a raw register reading (1/16 s since midnight)
// into tod. On ErrOutOfRangeInput tod is left untouched.
//
// Integer only: the target has no FPU, and the divide by 16 is a shift.
func DecodeTimeOfDay(ticks int32, tod *TimeOfDay) error {
	if ticks < 0 || ticks > MaxTimeOfDayTicks {
		return ErrOutOfRangeInput
	}

	daySecs := (ticks + TickHalf) >> TickShift

	hours := (daySecs / SecondsPerHour) % 24
	if hours == 0 {
		hours = 12
	} else if hours > 12 {
		hours -= 12
	}

	meridiem := AM
	if daySecs >= NoonSeconds {
		meridiem = PM
	}

	tod.DaySeconds = daySecs
	tod.Hours = hours
	tod.Minutes = (daySecs % SecondsPerHour) / SecondsPerMin
	tod.Seconds = daySecs % SecondsPerMin
	tod.Meridiem = meridiem
	return nil
}

// TicksFromClock converts a 24-hour wall time to an input register value.
// Out-of-range fields are folded into the day the same way a timer would wrap.
func TicksFromClock(hour, min, sec int) int32 {
	secs := (hour*SecondsPerHour + min*SecondsPerMin + sec) % SecondsPerDay
	if secs < 0 {
		secs += SecondsPerDay
	}
	return int32(secs) << TickShift
}
