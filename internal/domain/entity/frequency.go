package entity

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is one of the four recurrence classes a reminder can use.
type Frequency string

const (
	FrequencyHourly  Frequency = "hourly"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Frequencies lists the supported classes in display order.
var Frequencies = []Frequency{FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	return f, nil
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// NextOccurrence returns the occurrence following current. Monthly recurrences
// use current's own day of month as the anchor, so a clamped day drifts
// (Jan 31 -> Feb 28 -> Mar 28). Reminders keep their anchor and call Next instead.
func NextOccurrence(current time.Time, f Frequency) time.Time {
	return f.Next(current, current)
}

// Next returns the occurrence following current, re-deriving the wall-clock
// time (and for monthly, the day of month) from anchor. All calendar math
// happens in current's location.
//
//   - hourly:  current + 1h (absolute)
//   - daily:   next calendar day at the anchor's local time of day
//   - weekly:  same weekday a week later at the anchor's local time of day
//   - monthly: next calendar month on min(anchor day, last day of that month)
func (f Frequency) Next(current, anchor time.Time) time.Time {
	loc := current.Location()
	clock := anchor.In(loc)
	y, m, d := current.Date()

	switch f {
	case FrequencyHourly:
		return current.Add(time.Hour)
	case FrequencyWeekly:
		return atClock(y, m, d+7, clock, loc)
	case FrequencyMonthly:
		first := time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
		day := min(clock.Day(), daysIn(first.Year(), first.Month()))
		return atClock(first.Year(), first.Month(), day, clock, loc)
	}

	// daily, and the fallback for anything ParseFrequency would reject
	return atClock(y, m, d+1, clock, loc)
}

func atClock(y int, m time.Month, d int, clock time.Time, loc *time.Location) time.Time {
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), loc)
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
