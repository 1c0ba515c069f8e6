// Package worklog extracts time-tracking commands from commit messages and
// folds them into a per-day, per-ticket aggregate.
package worklog

import (
	"regexp"
	"strconv"
)

const minutesPerHour = 60

var (
	colonFormPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
	hourPattern      = regexp.MustCompile(`(?i)(\d+)h`)
	minutePattern    = regexp.MustCompile(`(?i)(\d{2})m`)
)

// ParseDuration converts a raw duration fragment into total minutes.
//
// Two mutually exclusive forms are recognized, in priority order:
//
//  1. Colon form: "H:MM" at the start of the fragment (1-2 digit hour,
//     exactly 2-digit minute). When it matches, no other form is checked.
//  2. Letter form: an hour component "Nh" (any digit count) and a minute
//     component "MMm" (exactly two digits), each optional, case-insensitive,
//     first match anywhere in the fragment. The result is the sum of
//     whatever components were found.
//
// The two-digit minute requirement is deliberate: "5m" does not match while
// "05m" does. Fragments matching neither form yield 0; parsing is total and
// never fails.
func ParseDuration(fragment string) int {
	if m := colonFormPattern.FindStringSubmatch(fragment); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])

		return hours*minutesPerHour + minutes
	}

	total := 0

	if m := hourPattern.FindStringSubmatch(fragment); m != nil {
		hours, _ := strconv.Atoi(m[1])
		total += hours * minutesPerHour
	}

	if m := minutePattern.FindStringSubmatch(fragment); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		total += minutes
	}

	return total
}
