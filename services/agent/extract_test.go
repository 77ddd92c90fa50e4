package agent

import (
	"strings"
	"testing"
	"time"

	"tailortalk/models"

	"go.uber.org/zap"
)

func TestExtractServiceType(t *testing.T) {
	svc := newTestAgent(t)

	cases := []struct {
		message string
		want    string
	}{
		{"i want a haircut", "Haircut"},
		{"book me a Hair Styling appointment", "Hair Styling"},
		{"do you do coloring?", "Hair Coloring"},
		{"a quick consultation please", "Consultation"},
		// First catalog-order match wins regardless of position.
		{"coloring or maybe a haircut", "Haircut"},
		{"just chatting", ""},
	}

	for _, tc := range cases {
		if got := svc.extractServiceType(tc.message); got != tc.want {
			t.Errorf("extractServiceType(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractTemporalExpression(t *testing.T) {
	matching := []string{
		"tomorrow works",
		"Today please",
		"sometime next week",
		"how about Friday",
		"at 2:30",
		"around 14/30",
		"2pm is fine",
		"11am",
	}
	for _, message := range matching {
		if got := extractTemporalExpression(message); got != TemporalPlaceholder {
			t.Errorf("extractTemporalExpression(%q) = %q, want placeholder", message, got)
		}
	}

	nonMatching := []string{
		"whenever",
		"a haircut please",
		"",
	}
	for _, message := range nonMatching {
		if got := extractTemporalExpression(message); got != "" {
			t.Errorf("extractTemporalExpression(%q) = %q, want empty", message, got)
		}
	}
}

func TestSuggestSlotsFromMonday(t *testing.T) {
	svc := newTestAgent(t)

	slots := svc.suggestSlots()
	if len(slots) != 6 {
		t.Fatalf("got %d slots, want 6", len(slots))
	}
	// Tuesday gets all three clock times, Wednesday the remainder.
	if want := "Tuesday, March 04 at 9:00 AM"; slots[0] != want {
		t.Errorf("slots[0] = %q, want %q", slots[0], want)
	}
	if want := "Wednesday, March 05 at 4:00 PM"; slots[5] != want {
		t.Errorf("slots[5] = %q, want %q", slots[5], want)
	}
}

func TestSuggestSlotsSkipsWeekends(t *testing.T) {
	svc := NewDefaultService(models.DefaultServiceCatalog(), zap.NewNop())
	// Friday: the following three days are Sat/Sun/Mon.
	svc.Now = func() time.Time {
		return time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	}

	slots := svc.suggestSlots()
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3 (Monday only)", len(slots))
	}
	for _, slot := range slots {
		if strings.Contains(slot, "Saturday") || strings.Contains(slot, "Sunday") {
			t.Errorf("weekend slot offered: %q", slot)
		}
		if !strings.HasPrefix(slot, "Monday, March 10") {
			t.Errorf("slot %q, want a Monday, March 10 label", slot)
		}
	}
}

func TestSuggestSlotsNeverExceedsSix(t *testing.T) {
	svc := NewDefaultService(models.DefaultServiceCatalog(), zap.NewNop())

	// Sweep a full fortnight of base days; the cap and the weekend rule must
	// hold from any starting point.
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		day := base.AddDate(0, 0, i)
		svc.Now = func() time.Time { return day }

		slots := svc.suggestSlots()
		if len(slots) > 6 {
			t.Errorf("base %s: got %d slots, want at most 6", day.Weekday(), len(slots))
		}
		for _, slot := range slots {
			if strings.Contains(slot, "Saturday") || strings.Contains(slot, "Sunday") {
				t.Errorf("base %s: weekend slot offered: %q", day.Weekday(), slot)
			}
		}
	}
}
