package timewindow

import (
	"regexp"
	"strings"
	"time"
)

// DayFormats are the layouts used to label a single day.
var DayFormats = struct {
	Long, YearLong, Short, YearShort string
}{
	Long:      "January 2",
	YearLong:  "January 2 2006",
	Short:     "Jan 2",
	YearShort: "Jan 2 2006",
}

// MonthFormats are the layouts used to label a month.
var MonthFormats = struct {
	Long, YearLong, Short, YearShort string
}{
	Long:      "January",
	YearLong:  "January 2006",
	Short:     "Jan",
	YearShort: "Jan 2006",
}

// QuarterFormats label quarters by their first month.
var QuarterFormats = MonthFormats

// TimeFormats are the layouts used to label an instant in local notation.
var TimeFormats = struct {
	TimeLong, YearTimeLong, TimeShort, YearTimeShort string
}{
	TimeLong:      "January 2 3:04:05 PM",
	YearTimeLong:  "January 2 2006 3:04:05 PM",
	TimeShort:     "Jan 2 3:04 PM",
	YearTimeShort: "Jan 2 2006 3:04 PM",
}

// DayNumericFormats holds the ISO rendering of a day.
type DayNumericFormats struct {
	YearMonthDate string `json:"yearMonthDate"`
}

// NumericDay renders t as 2006-01-02 in UTC.
func NumericDay(t time.Time) DayNumericFormats {
	return DayNumericFormats{YearMonthDate: t.UTC().Format(time.DateOnly)}
}

// UTCFormats holds exact UTC renderings of one instant.
type UTCFormats struct {
	TimeLong      string `json:"timeLong"`
	YearTimeLong  string `json:"yearTimeLong"`
	TimeShort     string `json:"timeShort"`
	YearTimeShort string `json:"yearTimeShort"`
}

var (
	weekdayPrefix = regexp.MustCompile(`^\D{5}`)
	yearToken     = regexp.MustCompile(`\d{4}`)
	doubleSpace   = regexp.MustCompile(` {2}`)
	secondsToken  = regexp.MustCompile(`(:\d{2})(:\d{2})`)
)

// UTCTimeFormats derives "DD MMM [YYYY] HH:mm[:ss] UTC" strings by trimming
// tokens out of the RFC 1123 rendering, so the output never depends on locale.
func UTCTimeFormats(t time.Time) UTCFormats {
	canonical := weekdayPrefix.ReplaceAllString(t.UTC().Format(time.RFC1123), "")
	withoutYear := doubleSpace.ReplaceAllLiteralString(replaceFirst(yearToken, canonical, ""), " ")

	return UTCFormats{
		TimeLong:      withoutYear,
		YearTimeLong:  canonical,
		TimeShort:     replaceFirst(secondsToken, withoutYear, "$1"),
		YearTimeShort: replaceFirst(secondsToken, canonical, "$1"),
	}
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:loc[0]])
	b.Write(re.ExpandString(nil, repl, s, loc))
	b.WriteString(s[loc[1]:])
	return b.String()
}
