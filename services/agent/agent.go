// File: services/agent/agent.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"tailortalk/models"

	"go.uber.org/zap"
)

const (
	greetingMessage = "Hello! Welcome to TailorTalk. I'm here to help you book appointments for our salon services. How can I assist you today?"
	generalMessage  = "I'm here to help you with booking appointments and information about our services. Would you like to book an appointment or learn about our services?"
	errorMessage    = "I'm sorry, I encountered an error. Please try again."
)

// ProcessMessage classifies the message and dispatches to the matching
// handler. Intent priority is booking > availability > service inquiry >
// general. Any fault raised below this point is recovered here and converted
// into the fixed error envelope; no error ever reaches the caller.
//
// Conversation history is accepted on the wire but not consulted: intent is
// derived from the current message alone.
func (s *DefaultService) ProcessMessage(ctx context.Context, req models.ChatRequest) (resp *models.ChatResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("agent: recovered fault while processing message",
				zap.Any("fault", r),
				zap.String("sessionId", req.SessionID),
			)
			resp = errorResponse()
		}
	}()

	message := strings.ToLower(strings.TrimSpace(req.Message))

	switch {
	case isBookingRequest(message):
		resp = s.handleBookingRequest(req.Message)
	case isAvailabilityRequest(message):
		resp = s.handleAvailabilityRequest(req.Message)
	case isServiceInquiry(message):
		resp = s.handleServiceInquiry()
	default:
		resp = s.handleGeneralConversation(message)
	}
	return resp
}

// handleBookingRequest drives the three-way booking branch: both slots
// extracted, service only, or neither.
func (s *DefaultService) handleBookingRequest(message string) *models.ChatResponse {
	serviceType := s.extractServiceType(message)
	preferredTime := extractTemporalExpression(message)

	switch {
	case serviceType != "" && preferredTime != "":
		// A concrete time still has to be confirmed against true
		// availability before any calendar mutation happens.
		return &models.ChatResponse{
			Message: fmt.Sprintf(
				"Great! I can help you book a %s appointment. Let me check availability for %s.",
				serviceType, preferredTime,
			),
			Intent: models.IntentBookingWithDetails,
			BookingData: &models.BookingData{
				ServiceType:   serviceType,
				PreferredTime: preferredTime,
			},
			SuggestedTimes:       []string{},
			RequiresConfirmation: true,
		}

	case serviceType != "":
		return &models.ChatResponse{
			Message: fmt.Sprintf(
				"I'd be happy to book a %s appointment for you! When would you prefer to come in?",
				serviceType,
			),
			Intent:         models.IntentBookingNeedsTime,
			BookingData:    &models.BookingData{ServiceType: serviceType},
			SuggestedTimes: s.suggestSlots(),
		}

	default:
		return &models.ChatResponse{
			Message: "I'd be happy to help you book an appointment! What service are you interested in? " +
				"We offer haircuts, styling, coloring, and consultations.",
			Intent:         models.IntentBookingNeedsService,
			SuggestedTimes: []string{},
		}
	}
}

func (s *DefaultService) handleAvailabilityRequest(message string) *models.ChatResponse {
	requestedDate := extractTemporalExpression(message)

	if requestedDate != "" {
		return &models.ChatResponse{
			Message: fmt.Sprintf(
				"Let me check our availability for %s. I'll show you the open time slots.",
				requestedDate,
			),
			Intent:         models.IntentCheckAvailability,
			BookingData:    &models.BookingData{RequestedDate: requestedDate},
			SuggestedTimes: s.suggestSlots(),
		}
	}

	// No date given; still offer candidate slots proactively.
	return &models.ChatResponse{
		Message:        "I can check our availability for you! What date are you looking for?",
		Intent:         models.IntentAvailabilityNeedsDate,
		SuggestedTimes: s.suggestSlots(),
	}
}

func (s *DefaultService) handleServiceInquiry() *models.ChatResponse {
	lines := make([]string, 0, len(s.Catalog))
	for _, svc := range s.Catalog {
		lines = append(lines, fmt.Sprintf("• %s (%d minutes)", svc.Name, svc.DurationMinutes))
	}

	return &models.ChatResponse{
		Message: fmt.Sprintf(
			"Here are our available services:\n\n%s\n\nWould you like to book any of these services?",
			strings.Join(lines, "\n"),
		),
		Intent:         models.IntentServiceInformation,
		SuggestedTimes: []string{},
	}
}

func (s *DefaultService) handleGeneralConversation(message string) *models.ChatResponse {
	if isGreeting(message) {
		return &models.ChatResponse{
			Message:        greetingMessage,
			Intent:         models.IntentGreeting,
			SuggestedTimes: []string{},
		}
	}

	return &models.ChatResponse{
		Message:        generalMessage,
		Intent:         models.IntentGeneral,
		SuggestedTimes: []string{},
	}
}

func errorResponse() *models.ChatResponse {
	return &models.ChatResponse{
		Message:        errorMessage,
		Intent:         models.IntentError,
		SuggestedTimes: []string{},
	}
}
