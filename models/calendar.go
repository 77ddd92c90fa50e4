package models

import "time"

// Event is a calendar event as stored and returned by the calendar service.
type Event struct {
	ID            string    `bson:"_id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Start         time.Time `bson:"start" json:"start"`
	End           time.Time `bson:"end" json:"end"`
	AttendeeEmail string    `bson:"attendeeEmail,omitempty" json:"attendee_email,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"created_at"`
}

// AvailabilitySlot is a free appointment window.
type AvailabilitySlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingRequest is the payload for /api/book.
type BookingRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	AttendeeEmail string    `json:"attendee_email"`
	SessionID     string    `json:"session_id"`
}

// BookingResponse reports the outcome of a booking attempt.
type BookingResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	EventID      string `json:"event_id,omitempty"`
	EventDetails *Event `json:"event_details,omitempty"`
}
