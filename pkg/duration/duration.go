package duration

import (
	"lukechampine.com/uint128"
)

const (
	nanosPerMicro   = 1000
	microsPerMilli  = 1000
	millisPerSecond = 1000
	secondsPerMin   = 60
	minutesPerHour  = 60
	hoursPerDay     = 24
	daysPerYear     = 365
)

// Duration is the mixed-radix breakdown of an elapsed time.
// Every field except Years holds the remainder left after carrying into the
// next larger unit, so Days is 0-364, Hours 0-23 and so on.
//
// Two values are equal only when every field matches; Years=0, Days=365 is not
// the same value as Years=1, even though no constructor produces the former.
type Duration struct {
	Years   uint64 `yaml:"years"`
	Days    uint64 `yaml:"days"`
	Hours   uint64 `yaml:"hours"`
	Minutes uint64 `yaml:"minutes"`
	Seconds uint64 `yaml:"seconds"`
	Millis  uint64 `yaml:"millis"`
	Micros  uint64 `yaml:"micros"`
	Nanos   uint64 `yaml:"nanos"`
}

// FromNanos decomposes a number of nanoseconds.
func FromNanos(nanos uint64) Duration {
	d := FromMicros(nanos / nanosPerMicro)
	d.Nanos = nanos % nanosPerMicro
	return d
}

// FromMicros decomposes a number of microseconds. Nanos is always zero.
func FromMicros(micros uint64) Duration {
	d := FromMillis(micros / microsPerMilli)
	d.Micros = micros % microsPerMilli
	return d
}

// FromMillis decomposes a number of milliseconds. Micros and Nanos are always zero.
func FromMillis(millis uint64) Duration {
	d := FromSecs(millis / millisPerSecond)
	d.Millis = millis % millisPerSecond
	return d
}

// FromSecs decomposes a number of seconds. The sub-second fields are always zero.
func FromSecs(secs uint64) Duration {
	minutes := secs / secondsPerMin
	hours := minutes / minutesPerHour
	days := hours / hoursPerDay

	return Duration{
		Years:   days / daysPerYear,
		Days:    days % daysPerYear,
		Hours:   hours % hoursPerDay,
		Minutes: minutes % minutesPerHour,
		Seconds: secs % secondsPerMin,
	}
}

// FromMinutes decomposes a number of minutes.
func FromMinutes(minutes uint64) Duration {
	hours := minutes / minutesPerHour
	days := hours / hoursPerDay

	return Duration{
		Years:   days / daysPerYear,
		Days:    days % daysPerYear,
		Hours:   hours % hoursPerDay,
		Minutes: minutes % minutesPerHour,
	}
}

// FromHours decomposes a number of hours.
func FromHours(hours uint64) Duration {
	days := hours / hoursPerDay

	return Duration{
		Years: days / daysPerYear,
		Days:  days % daysPerYear,
		Hours: hours % hoursPerDay,
	}
}

// FromDays decomposes a number of 24-hour days into 365-day years and days.
// FromDays(366) is one year and one day.
func FromDays(days uint64) Duration {
	return Duration{
		Years: days / daysPerYear,
		Days:  days % daysPerYear,
	}
}

// FromYears returns a Duration holding only years.
func FromYears(years uint64) Duration {
	return Duration{Years: years}
}

// FromNanos128 is FromNanos for inputs wider than 64 bits.
//
// All fields below Years are exact for every input. A years count that does
// not fit in 64 bits keeps only its low 64 bits; with 128-bit nanoseconds that
// starts past roughly 1.8e19 years and can only be reached from the 128-bit
// entry points.
func FromNanos128(nanos uint128.Uint128) Duration {
	micros, ns := nanos.QuoRem64(nanosPerMicro)
	d := FromMicros128(micros)
	d.Nanos = ns
	return d
}

// FromMicros128 is FromMicros for inputs wider than 64 bits.
// See [FromNanos128] for the years wraparound.
func FromMicros128(micros uint128.Uint128) Duration {
	millis, us := micros.QuoRem64(microsPerMilli)
	d := FromMillis128(millis)
	d.Micros = us
	return d
}

// FromMillis128 is FromMillis for inputs wider than 64 bits.
// See [FromNanos128] for the years wraparound.
func FromMillis128(millis uint128.Uint128) Duration {
	if millis.Hi == 0 {
		return FromMillis(millis.Lo)
	}

	secs, ms := millis.QuoRem64(millisPerSecond)
	minutes, s := secs.QuoRem64(secondsPerMin)
	hours, m := minutes.QuoRem64(minutesPerHour)
	days, h := hours.QuoRem64(hoursPerDay)
	years, dd := days.QuoRem64(daysPerYear)

	return Duration{
		Years:   years.Lo,
		Days:    dd,
		Hours:   h,
		Minutes: m,
		Seconds: s,
		Millis:  ms,
	}
}

// IsZero reports whether every field is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// TotalNanos folds the fields back into a nanosecond count using the same
// fixed ratios the constructors divide by. Arithmetic wraps modulo 2^128.
func (d Duration) TotalNanos() uint128.Uint128 {
	total := uint128.From64(d.Years).
		MulWrap64(daysPerYear).AddWrap64(d.Days).
		MulWrap64(hoursPerDay).AddWrap64(d.Hours).
		MulWrap64(minutesPerHour).AddWrap64(d.Minutes).
		MulWrap64(secondsPerMin).AddWrap64(d.Seconds).
		MulWrap64(millisPerSecond).AddWrap64(d.Millis).
		MulWrap64(microsPerMilli).AddWrap64(d.Micros).
		MulWrap64(nanosPerMicro).AddWrap64(d.Nanos)
	return total
}
