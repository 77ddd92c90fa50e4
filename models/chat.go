package models

// Intent is the classification label assigned to a single user message.
// Exactly one intent is assigned per processed message.
type Intent string

const (
	IntentBookingWithDetails    Intent = "booking_with_details"
	IntentBookingNeedsTime      Intent = "booking_needs_time"
	IntentBookingNeedsService   Intent = "booking_needs_service"
	IntentCheckAvailability     Intent = "check_availability"
	IntentAvailabilityNeedsDate Intent = "availability_needs_date"
	IntentServiceInformation    Intent = "service_information"
	IntentGreeting              Intent = "greeting"
	IntentGeneral               Intent = "general"
	IntentError                 Intent = "error"
)

// ConversationEntry is one prior user/assistant exchange.
type ConversationEntry struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message             string              `json:"message" binding:"required"`
	SessionID           string              `json:"session_id"`
	ConversationHistory []ConversationEntry `json:"conversation_history"`
}

// BookingData is the partial booking record extracted from a message.
// RequestedDate is only populated on availability answers.
type BookingData struct {
	ServiceType   string `json:"service_type,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	RequestedDate string `json:"requested_date,omitempty"`
}

// ChatResponse is the response envelope returned for every chat message.
type ChatResponse struct {
	Message              string       `json:"message"`
	Intent               Intent       `json:"intent"`
	BookingData          *BookingData `json:"booking_data,omitempty"`
	SuggestedTimes       []string     `json:"suggested_times"`
	RequiresConfirmation bool         `json:"requires_confirmation"`
}
