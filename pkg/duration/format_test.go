package duration_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgaunet/millisecond/pkg/duration"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		name     string
		duration duration.Duration
		merge    bool
		want     []duration.Component
	}{
		{
			name:     "zero",
			duration: duration.Duration{},
			merge:    true,
			want:     []duration.Component{},
		},
		{
			name:     "merged seconds and millis",
			duration: duration.Duration{Seconds: 1, Millis: 400},
			merge:    true,
			want:     []duration.Component{duration.SecsAndMillis(1, 400)},
		},
		{
			name:     "unmerged seconds and millis",
			duration: duration.Duration{Seconds: 1, Millis: 400},
			merge:    false,
			want:     []duration.Component{duration.Seconds(1), duration.Millis(400)},
		},
		{
			name:     "millis without seconds stays separate when merging",
			duration: duration.Duration{Minutes: 3, Millis: 5},
			merge:    true,
			want:     []duration.Component{duration.Minutes(3), duration.Millis(5)},
		},
		{
			name:     "seconds without millis",
			duration: duration.Duration{Seconds: 48},
			merge:    true,
			want:     []duration.Component{duration.Seconds(48)},
		},
		{
			name:     "zero fields in the middle are skipped",
			duration: duration.Duration{Years: 2, Hours: 3, Micros: 7},
			merge:    true,
			want:     []duration.Component{duration.Years(2), duration.Hours(3), duration.Micros(7)},
		},
		{
			name: "every field",
			duration: duration.Duration{
				Years: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5, Millis: 6, Micros: 7, Nanos: 8,
			},
			merge: false,
			want: []duration.Component{
				duration.Years(1), duration.Days(2), duration.Hours(3), duration.Minutes(4),
				duration.Seconds(5), duration.Millis(6), duration.Micros(7), duration.Nanos(8),
			},
		},
		{
			name: "every field merged",
			duration: duration.Duration{
				Years: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5, Millis: 6, Micros: 7, Nanos: 8,
			},
			merge: true,
			want: []duration.Component{
				duration.Years(1), duration.Days(2), duration.Hours(3), duration.Minutes(4),
				duration.SecsAndMillis(5, 6), duration.Micros(7), duration.Nanos(8),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.duration.Components(tt.merge)); diff != "" {
				t.Errorf("Components(%v) mismatch (-want +got):\n%s", tt.merge, diff)
			}
		})
	}
}

func TestPartsMerges(t *testing.T) {
	d := duration.FromMillis(1400)
	assert.Equal(t, d.Components(true), d.Parts())
}

func TestComponentText(t *testing.T) {
	tests := []struct {
		component duration.Component
		short     string
		long      string
	}{
		{duration.Years(1), "1y", "1 year"},
		{duration.Years(584942417), "584942417y", "584942417 years"},
		{duration.Days(17), "17d", "17 days"},
		{duration.Days(1), "1d", "1 day"},
		{duration.Hours(5), "5h", "5 hours"},
		{duration.Minutes(1), "1m", "1 minute"},
		{duration.Minutes(10), "10m", "10 minutes"},
		{duration.Seconds(1), "1s", "1 second"},
		{duration.Seconds(48), "48s", "48 seconds"},
		{duration.Millis(1), "1ms", "1 millisecond"},
		{duration.Millis(400), "400ms", "400 milliseconds"},
		{duration.Micros(1), "1µs", "1 microsecond"},
		{duration.Micros(800), "800µs", "800 microseconds"},
		{duration.Nanos(1), "1ns", "1 nanosecond"},
		{duration.Nanos(800), "800ns", "800 nanoseconds"},
		{duration.SecsAndMillis(1, 400), "1.400s", "1.400 seconds"},
		{duration.SecsAndMillis(59, 999), "59.999s", "59.999 seconds"},
		{duration.SecsAndMillis(10, 5), "10.5s", "10.5 seconds"},
		{duration.SecsAndMillis(1, 1), "1.1s", "1.1 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.short, func(t *testing.T) {
			assert.Equal(t, tt.short, tt.component.ShortText())
			assert.Equal(t, tt.short, tt.component.String())
			assert.Equal(t, tt.short, tt.component.Text(duration.StyleShort))
			assert.Equal(t, tt.long, tt.component.LongText())
			assert.Equal(t, tt.long, tt.component.Text(duration.StyleLong))
		})
	}
}

func TestDurationStrings(t *testing.T) {
	tests := []struct {
		name          string
		duration      duration.Duration
		short         string
		long          string
		unmergedShort string
		unmergedLong  string
	}{
		{
			name:     "zero",
			duration: duration.FromMillis(0),
		},
		{
			name:          "ten seconds",
			duration:      duration.FromMillis(10_123),
			short:         "10.123s",
			long:          "10.123 seconds",
			unmergedShort: "10s 123ms",
			unmergedLong:  "10 seconds 123 milliseconds",
		},
		{
			name:          "one second",
			duration:      duration.FromMillis(1_000),
			short:         "1s",
			long:          "1 second",
			unmergedShort: "1s",
			unmergedLong:  "1 second",
		},
		{
			name:          "just under two minutes",
			duration:      duration.FromMillis(119_999),
			short:         "1m 59.999s",
			long:          "1 minute 59.999 seconds",
			unmergedShort: "1m 59s 999ms",
			unmergedLong:  "1 minute 59 seconds 999 milliseconds",
		},
		{
			name:          "calendar example",
			duration:      duration.FromMillis(33_023_448_000),
			short:         "1y 17d 5h 10m 48s",
			long:          "1 year 17 days 5 hours 10 minutes 48 seconds",
			unmergedShort: "1y 17d 5h 10m 48s",
			unmergedLong:  "1 year 17 days 5 hours 10 minutes 48 seconds",
		},
		{
			name:          "sub-millisecond",
			duration:      duration.FromNanos(1_800),
			short:         "1µs 800ns",
			long:          "1 microsecond 800 nanoseconds",
			unmergedShort: "1µs 800ns",
			unmergedLong:  "1 microsecond 800 nanoseconds",
		},
		{
			name:          "leap day is a plain day",
			duration:      duration.FromDays(366),
			short:         "1y 1d",
			long:          "1 year 1 day",
			unmergedShort: "1y 1d",
			unmergedLong:  "1 year 1 day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.short, tt.duration.ShortString())
			assert.Equal(t, tt.short, tt.duration.String())
			assert.Equal(t, tt.long, tt.duration.LongString())
			assert.Equal(t, tt.unmergedShort, tt.duration.Format(duration.StyleShort, false))
			assert.Equal(t, tt.unmergedLong, tt.duration.Format(duration.StyleLong, false))
		})
	}
}

func TestZeroRendersEmptyFromEveryUnit(t *testing.T) {
	for _, d := range []duration.Duration{
		duration.FromNanos(0), duration.FromMicros(0), duration.FromMillis(0),
		duration.FromSecs(0), duration.FromMinutes(0), duration.FromHours(0),
		duration.FromDays(0), duration.FromYears(0),
	} {
		assert.Empty(t, d.ShortString())
		assert.Empty(t, d.LongString())
		assert.Empty(t, d.Components(false))
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    duration.Style
		wantErr bool
	}{
		{"short", duration.StyleShort, false},
		{"long", duration.StyleLong, false},
		{"LONG", duration.StyleLong, false},
		{" Short ", duration.StyleShort, false},
		{"", duration.StyleShort, true},
		{"verbose", duration.StyleShort, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := duration.ParseStyle(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, duration.ErrUnknownStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, name string) duration.Style {
	t.Helper()
	s, err := duration.ParseStyle(name)
	require.NoError(t, err)
	return s
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "SecsAndMillis", duration.KindSecsAndMillis.String())
	assert.Equal(t, "ms", duration.KindMillis.Suffix())
	assert.Equal(t, "nanosecond", duration.KindNanos.Word())
	assert.Equal(t, "Kind(42)", duration.Kind(42).String())
	assert.Empty(t, duration.Kind(42).Suffix())
	assert.Equal(t, "Style(7)", duration.Style(7).String())
}
