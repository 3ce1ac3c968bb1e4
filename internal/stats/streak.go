package stats

import "time"

// DateLayout is the calendar-day format study sessions are keyed by.
const DateLayout = "2006-01-02"

// CurrentStreak counts consecutive study days ending today or yesterday.
// dates are distinct session days in DateLayout, most recent first. A streak
// whose last study day is before yesterday has been broken and counts 0;
// studying today extends yesterday's streak rather than starting a new one.
func CurrentStreak(dates []string, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	day := func(t time.Time) string { return t.Format(DateLayout) }
	today := day(now)
	yesterday := day(now.AddDate(0, 0, -1))

	if dates[0] != today && dates[0] != yesterday {
		return 0
	}

	streak := 1
	cursor, err := time.ParseInLocation(DateLayout, dates[0], now.Location())
	if err != nil {
		return 0
	}
	for _, d := range dates[1:] {
		cursor = cursor.AddDate(0, 0, -1)
		if d != day(cursor) {
			break
		}
		streak++
	}
	return streak
}
