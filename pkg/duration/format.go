package duration

import (
	"fmt"
	"strings"
)

// Style selects between the compact and the spelled-out rendering.
type Style int

const (
	// StyleShort renders "1y 17d 5h".
	StyleShort Style = iota
	// StyleLong renders "1 year 17 days 5 hours".
	StyleLong
)

func (s Style) String() string {
	switch s {
	case StyleShort:
		return "short"
	case StyleLong:
		return "long"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle maps "short" or "long" (case-insensitive) to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "short":
		return StyleShort, nil
	case "long":
		return StyleLong, nil
	default:
		return StyleShort, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Components lists the non-zero fields of d from years down to nanoseconds.
//
// With merge set, non-zero seconds and non-zero millis collapse into one
// SecsAndMillis component. Millis without seconds, or any millis when merge is
// off, is listed on its own.
func (d Duration) Components(merge bool) []Component {
	parts := make([]Component, 0, len(kinds))

	if d.Years > 0 {
		parts = append(parts, Years(d.Years))
	}
	if d.Days > 0 {
		parts = append(parts, Days(d.Days))
	}
	if d.Hours > 0 {
		parts = append(parts, Hours(d.Hours))
	}
	if d.Minutes > 0 {
		parts = append(parts, Minutes(d.Minutes))
	}

	merged := merge && d.Seconds > 0 && d.Millis > 0
	switch {
	case merged:
		parts = append(parts, SecsAndMillis(d.Seconds, d.Millis))
	case d.Seconds > 0:
		parts = append(parts, Seconds(d.Seconds))
	}
	if d.Millis > 0 && !merged {
		parts = append(parts, Millis(d.Millis))
	}

	if d.Micros > 0 {
		parts = append(parts, Micros(d.Micros))
	}
	if d.Nanos > 0 {
		parts = append(parts, Nanos(d.Nanos))
	}

	return parts
}

// Parts is Components(true).
func (d Duration) Parts() []Component {
	return d.Components(true)
}

// Format joins the components of d with single spaces. A zero Duration
// renders as the empty string.
func (d Duration) Format(style Style, merge bool) string {
	parts := d.Components(merge)
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text(style)
	}
	return strings.Join(texts, " ")
}

// ShortString renders d as "1y 17d 5h 10m 48s", merging seconds and millis.
func (d Duration) ShortString() string {
	return d.Format(StyleShort, true)
}

// LongString renders d as "1 year 17 days 5 hours 10 minutes 48 seconds",
// merging seconds and millis.
func (d Duration) LongString() string {
	return d.Format(StyleLong, true)
}

func (d Duration) String() string {
	return d.ShortString()
}
