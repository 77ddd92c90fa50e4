// File: services/agent/classify.go
package agent

import "strings"

// Keyword vocabularies for intent detection. Matching is substring
// containment over the lower-cased message, and the booking vocabulary is
// always checked first: a message carrying both booking and availability
// words ("when can I book a haircut") is a booking attempt.
var (
	bookingKeywords = []string{
		"book", "schedule", "appointment", "reserve", "make an appointment",
		"i want to book", "can i book", "schedule me", "i need",
	}

	availabilityKeywords = []string{
		"available", "free", "open", "when can", "what times",
		"availability", "slots", "schedule",
	}

	serviceKeywords = []string{
		"service", "what do you offer", "price", "cost", "how much",
		"services", "haircut", "styling", "coloring",
	}

	greetingKeywords = []string{
		"hello", "hi", "hey", "good morning", "good afternoon",
	}
)

func containsAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func isBookingRequest(message string) bool {
	return containsAny(message, bookingKeywords)
}

func isAvailabilityRequest(message string) bool {
	return containsAny(message, availabilityKeywords)
}

func isServiceInquiry(message string) bool {
	return containsAny(message, serviceKeywords)
}

func isGreeting(message string) bool {
	return containsAny(message, greetingKeywords)
}
