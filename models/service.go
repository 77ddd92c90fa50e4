// models/service.go
package models

// SalonService represents a bookable service offered by the salon.
type SalonService struct {
	Key             string `json:"key"`              // e.g., "haircut"
	Name            string `json:"name"`             // e.g., "Haircut"
	DurationMinutes int    `json:"duration_minutes"` // appointment length
}

// DefaultServiceCatalog returns the catalog of the reference deployment.
// The catalog is immutable after construction; callers receive a fresh slice.
func DefaultServiceCatalog() []SalonService {
	return []SalonService{
		{Key: "haircut", Name: "Haircut", DurationMinutes: 60},
		{Key: "styling", Name: "Hair Styling", DurationMinutes: 90},
		{Key: "coloring", Name: "Hair Coloring", DurationMinutes: 120},
		{Key: "consultation", Name: "Consultation", DurationMinutes: 30},
	}
}
