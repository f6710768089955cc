package domain

import (
	"fmt"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

// LookupTimezone returns the timezone name of the unique group containing user.
// A user claimed by zero groups or by more than one is treated as unresolvable,
// not as an error.
func LookupTimezone(user string, groups []entity.TimezoneGroup) (string, bool) {
	found := ""
	matches := 0
	for _, g := range groups {
		for _, u := range g.Users {
			if u == user {
				found = g.Timezone
				matches++
				break
			}
		}
	}
	if matches != 1 {
		return "", false
	}
	return found, true
}

// LocalDate converts a UTC instant to the wall-clock calendar date in tz.
func LocalDate(nowUTC time.Time, tz string) (string, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	return nowUTC.In(loc).Format(DateLayout), nil
}

// LocalHourWeekday converts a UTC instant to the wall-clock hour and weekday
// in tz. Weekday numbering is Monday=0 through Sunday=6.
func LocalHourWeekday(nowUTC time.Time, tz string) (hour, weekday int, err error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	local := nowUTC.In(loc)
	// time.Weekday has Sunday=0; shift so Monday=0.
	return local.Hour(), (int(local.Weekday()) + 6) % 7, nil
}
