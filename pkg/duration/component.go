package duration

import (
	"fmt"
	"strconv"
)

// Kind identifies which unit a [Component] carries.
type Kind uint8

const (
	// KindYears is a whole number of 365-day years.
	KindYears Kind = iota
	// KindDays is the day-of-year remainder.
	KindDays
	// KindHours is the hour-of-day remainder.
	KindHours
	// KindMinutes is the minute-of-hour remainder.
	KindMinutes
	// KindSeconds is the second-of-minute remainder.
	KindSeconds
	// KindSecsAndMillis is seconds and milliseconds shown as one value.
	KindSecsAndMillis
	// KindMillis is the millisecond-of-second remainder.
	KindMillis
	// KindMicros is the microsecond-of-millisecond remainder.
	KindMicros
	// KindNanos is the nanosecond-of-microsecond remainder.
	KindNanos
)

var kinds = [...]struct {
	name   string
	suffix string
	word   string
}{
	KindYears:         {"Years", "y", "year"},
	KindDays:          {"Days", "d", "day"},
	KindHours:         {"Hours", "h", "hour"},
	KindMinutes:       {"Minutes", "m", "minute"},
	KindSeconds:       {"Seconds", "s", "second"},
	KindSecsAndMillis: {"SecsAndMillis", "s", "second"},
	KindMillis:        {"Millis", "ms", "millisecond"},
	KindMicros:        {"Micros", "µs", "microsecond"},
	KindNanos:         {"Nanos", "ns", "nanosecond"},
}

func (k Kind) valid() bool {
	return int(k) < len(kinds)
}

func (k Kind) String() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// Suffix returns the abbreviation used by the short style, e.g. "ms".
func (k Kind) Suffix() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].suffix
}

// Word returns the singular English unit name used by the long style, e.g. "millisecond".
func (k Kind) Word() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].word
}

// Component is one non-zero unit of a [Duration].
// Millis is only meaningful for KindSecsAndMillis, where Value holds the seconds.
type Component struct {
	Kind   Kind
	Value  uint64
	Millis uint64
}

// Years and the functions below build single-value components.
func Years(v uint64) Component   { return Component{Kind: KindYears, Value: v} }
func Days(v uint64) Component    { return Component{Kind: KindDays, Value: v} }
func Hours(v uint64) Component   { return Component{Kind: KindHours, Value: v} }
func Minutes(v uint64) Component { return Component{Kind: KindMinutes, Value: v} }
func Seconds(v uint64) Component { return Component{Kind: KindSeconds, Value: v} }
func Millis(v uint64) Component  { return Component{Kind: KindMillis, Value: v} }
func Micros(v uint64) Component  { return Component{Kind: KindMicros, Value: v} }
func Nanos(v uint64) Component   { return Component{Kind: KindNanos, Value: v} }

// SecsAndMillis builds the merged seconds component.
func SecsAndMillis(secs, millis uint64) Component {
	return Component{Kind: KindSecsAndMillis, Value: secs, Millis: millis}
}

// ShortText renders the component as value and suffix with no space: "5h", "1.400s".
// Millis of a merged component is printed as is, not padded to three digits.
func (c Component) ShortText() string {
	if c.Kind == KindSecsAndMillis {
		return fmt.Sprintf("%d.%ds", c.Value, c.Millis)
	}
	return strconv.FormatUint(c.Value, 10) + c.Kind.Suffix()
}

// LongText renders the component with an English unit word: "1 hour", "5 hours".
// A merged component always reads "<s>.<ms> seconds".
func (c Component) LongText() string {
	if c.Kind == KindSecsAndMillis {
		return fmt.Sprintf("%d.%d seconds", c.Value, c.Millis)
	}
	return pluralize(c.Value, c.Kind.Word())
}

// Text renders the component in the given style.
func (c Component) Text(style Style) string {
	if style == StyleLong {
		return c.LongText()
	}
	return c.ShortText()
}

func (c Component) String() string {
	return c.ShortText()
}

// pluralize uses the singular word only for exactly one.
func pluralize(n uint64, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.FormatUint(n, 10) + " " + word + "s"
}
