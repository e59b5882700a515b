// Package units maps user-facing unit names to the duration constructors.
package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"

	"github.com/sgaunet/millisecond/pkg/duration"
)

var (
	// ErrUnknownUnit is returned when a unit name is not recognized.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrInvalidValue is returned when a value is not a plain non-negative integer.
	ErrInvalidValue = errors.New("value must be a non-negative integer")
	// ErrValueOutOfRange is returned when a value does not fit the unit's input width.
	ErrValueOutOfRange = errors.New("value out of range")
)

// Unit is the unit an input value is expressed in.
type Unit int

// Supported units, finest first.
const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Years
)

var names = [...]string{
	Nanoseconds:  "ns",
	Microseconds: "us",
	Milliseconds: "ms",
	Seconds:      "s",
	Minutes:      "m",
	Hours:        "h",
	Days:         "d",
	Years:        "y",
}

var aliases = map[string]Unit{
	"ns": Nanoseconds, "nano": Nanoseconds, "nanos": Nanoseconds,
	"nanosecond": Nanoseconds, "nanoseconds": Nanoseconds,

	"us": Microseconds, "µs": Microseconds, "μs": Microseconds, "micro": Microseconds,
	"micros": Microseconds, "microsecond": Microseconds, "microseconds": Microseconds,

	"ms": Milliseconds, "milli": Milliseconds, "millis": Milliseconds,
	"millisecond": Milliseconds, "milliseconds": Milliseconds,

	"s": Seconds, "sec": Seconds, "secs": Seconds, "second": Seconds, "seconds": Seconds,

	"m": Minutes, "min": Minutes, "mins": Minutes, "minute": Minutes, "minutes": Minutes,

	"h": Hours, "hr": Hours, "hrs": Hours, "hour": Hours, "hours": Hours,

	"d": Days, "day": Days, "days": Days,

	"y": Years, "yr": Years, "yrs": Years, "year": Years, "years": Years,
}

// All returns every unit from the finest to the coarsest.
func All() []Unit {
	return []Unit{Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes, Hours, Days, Years}
}

func (u Unit) valid() bool {
	return u >= 0 && int(u) < len(names)
}

func (u Unit) String() string {
	if !u.valid() {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return names[u]
}

// SubSecond reports whether the unit is finer than a second.
// Sub-second values are accepted up to 128 bits, coarser ones up to 64.
func (u Unit) SubSecond() bool {
	return u < Seconds
}

// Parse resolves a unit name. Short names ("ms"), singular and plural words
// ("millisecond", "milliseconds") and common abbreviations are accepted,
// case-insensitively.
func Parse(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if u, ok := aliases[key]; ok {
		return u, nil
	}
	return Milliseconds, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Decompose parses value and hands it to the constructor for u.
func Decompose(u Unit, value string) (duration.Duration, error) {
	if !u.valid() {
		return duration.Duration{}, fmt.Errorf("%w: %s", ErrUnknownUnit, u)
	}

	value = strings.TrimSpace(value)
	if !isDigits(value) {
		return duration.Duration{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}

	if u.SubSecond() {
		wide, err := uint128.FromString(value)
		if err != nil {
			return duration.Duration{}, fmt.Errorf("%w: %q exceeds 128 bits", ErrValueOutOfRange, value)
		}
		switch u {
		case Nanoseconds:
			return duration.FromNanos128(wide), nil
		case Microseconds:
			return duration.FromMicros128(wide), nil
		default:
			return duration.FromMillis128(wide), nil
		}
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return duration.Duration{}, fmt.Errorf("%w: %q exceeds 64 bits", ErrValueOutOfRange, value)
	}
	switch u {
	case Seconds:
		return duration.FromSecs(n), nil
	case Minutes:
		return duration.FromMinutes(n), nil
	case Hours:
		return duration.FromHours(n), nil
	case Days:
		return duration.FromDays(n), nil
	default:
		return duration.FromYears(n), nil
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
