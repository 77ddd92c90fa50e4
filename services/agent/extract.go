// File: services/agent/extract.go
package agent

import (
	"regexp"
	"strings"
	"time"
)

// TemporalPlaceholder is returned whenever a date/time expression is
// detected. The agent does not resolve expressions to timestamps; callers
// confirm a concrete slot against the calendar before anything is booked.
const TemporalPlaceholder = "the requested time"

var temporalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`tomorrow`),
	regexp.MustCompile(`today`),
	regexp.MustCompile(`next week`),
	regexp.MustCompile(`monday|tuesday|wednesday|thursday|friday|saturday|sunday`),
	regexp.MustCompile(`\d{1,2}[:/]\d{1,2}`), // 2:30 or 14:30
	regexp.MustCompile(`\d{1,2}(am|pm)`),     // 2pm
}

// extractServiceType returns the display name of the first catalog service
// mentioned in the message, in catalog order, or "" when none matches.
func (s *DefaultService) extractServiceType(message string) string {
	lower := strings.ToLower(message)
	for _, svc := range s.Catalog {
		if strings.Contains(lower, svc.Key) || strings.Contains(lower, strings.ToLower(svc.Name)) {
			return svc.Name
		}
	}
	return ""
}

// extractTemporalExpression reports whether the message carries any date or
// time expression. On a hit it returns TemporalPlaceholder, otherwise "".
func extractTemporalExpression(message string) string {
	lower := strings.ToLower(message)
	for _, pattern := range temporalPatterns {
		if pattern.MatchString(lower) {
			return TemporalPlaceholder
		}
	}
	return ""
}

// Clock-time labels offered for suggested slots. These are business-rule
// constants, independent of the service catalog.
var slotClockLabels = []string{"9:00 AM", "2:00 PM", "4:00 PM"}

const maxSuggestedSlots = 6

// suggestSlots enumerates the next three calendar days starting tomorrow,
// skips weekends, and emits the fixed clock-time labels for each remaining
// weekday, truncated to maxSuggestedSlots entries. It is a static candidate
// generator and knows nothing about true calendar occupancy.
func (s *DefaultService) suggestSlots() []string {
	now := s.now()
	suggested := make([]string, 0, 3*len(slotClockLabels))

	for i := 1; i <= 3; i++ {
		day := now.AddDate(0, 0, i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		datePart := day.Format("Monday, January 02")
		for _, clock := range slotClockLabels {
			suggested = append(suggested, datePart+" at "+clock)
		}
	}

	if len(suggested) > maxSuggestedSlots {
		suggested = suggested[:maxSuggestedSlots]
	}
	return suggested
}
