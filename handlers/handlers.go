package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all endpoint handlers for route registration.
type HandlerBundle struct {
	// Chat endpoints.
	HandleChat gin.HandlerFunc

	// Booking endpoints.
	BookAppointment gin.HandlerFunc

	// Calendar endpoints.
	CheckAvailability gin.HandlerFunc
	GetEvents         gin.HandlerFunc
}
