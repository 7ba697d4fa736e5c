package timetext

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		line string
		want time.Time
		ok   bool
	}{
		{
			name: "weekday prefix, future date",
			line: "Mon, 5.3. 14:00",
			want: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "no weekday prefix",
			line: "5.3. 14:00",
			want: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "single digit hour",
			line: "Tue, 12.3. 9:05",
			want: time.Date(2024, 3, 12, 9, 5, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "extra internal whitespace collapses",
			line: "Mon,   5.3.   14:00",
			want: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "wrong weekday still stripped",
			line: "Xyz, 5.3. 14:00",
			want: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "past date rolls to next year",
			line: "Mon, 5.2. 14:00",
			want: time.Date(2025, 2, 5, 14, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{name: "empty line", line: "", ok: false},
		{name: "comment-ish text", line: "# ruins schedule", ok: false},
		{name: "missing month dot", line: "5.3 14:00", ok: false},
		{name: "single digit minute", line: "5.3. 14:0", ok: false},
		{name: "month out of range", line: "5.13. 14:00", ok: false},
		{name: "day out of range", line: "32.3. 14:00", ok: false},
		{name: "hour out of range", line: "5.3. 24:00", ok: false},
		{name: "minute out of range", line: "5.3. 14:61", ok: false},
		{name: "trailing garbage", line: "5.3. 14:00 extra", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line, now)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseYearInference(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "future keeps current year",
			now:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "already past rolls over",
			now:  time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly five minutes past stays current year",
			now:  time.Date(2024, 3, 5, 14, 5, 0, 0, time.UTC),
			want: time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "just over five minutes past rolls over",
			now:  time.Date(2024, 3, 5, 14, 5, 1, 0, time.UTC),
			want: time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse("Mon, 5.3. 14:00", tt.now)
			if !ok {
				t.Fatal("expected a match")
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
