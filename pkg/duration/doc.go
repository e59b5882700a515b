// Package duration splits an elapsed-time scalar into calendar-like units and
// renders the result as human-readable text.
//
// A year is always 365 days; there is no leap-year, timezone or wall-clock
// handling. Every constructor is total over its input type, so nothing in this
// package returns an error except the style parser used for user input.
//
// Usage:
//
//	d := duration.FromMillis(33023448000)
//	d.ShortString() // "1y 17d 5h 10m 48s"
//	d.LongString()  // "1 year 17 days 5 hours 10 minutes 48 seconds"
//
//	duration.FromMillis(1400).Components(false) // [Seconds(1) Millis(400)]
//	duration.FromMillis(1400).Components(true)  // [SecsAndMillis(1, 400)]
package duration
