package models

// ReminderPayload is the task payload for a scheduled appointment reminder.
type ReminderPayload struct {
	EventID  string `json:"eventId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}
