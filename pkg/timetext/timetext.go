package timetext

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Schedule lines look like "Mon, 5.3. 14:00" or "28.12. 9:05": optional
// 3-letter weekday prefix, then day.month. hour:minute. The weekday is
// decorative and never checked against the date.
var (
	weekdayPrefix = regexp.MustCompile(`^[A-Za-z]{3},\s*`)
	dateLine      = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\. (\d{1,2}):(\d{2})$`)
)

// pastGrace is how far in the past a current-year candidate may fall before
// it is pushed to next year. Events a few minutes gone are still "imminent"
// so that clock skew around a poll does not flip the year.
const pastGrace = 5 * time.Minute

// Parse converts one schedule line into an absolute UTC timestamp, inferring
// the year from now. ok is false for blank, malformed or out-of-range lines;
// a bad line is never an error, the caller decides whether to log it.
func Parse(line string, now time.Time) (time.Time, bool) {
	s := weekdayPrefix.ReplaceAllString(strings.TrimSpace(line), "")
	s = strings.Join(strings.Fields(s), " ")

	m := dateLine.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	now = now.UTC()
	t := time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if now.Sub(t) > pastGrace {
		t = t.AddDate(1, 0, 0)
	}
	return t, true
}
