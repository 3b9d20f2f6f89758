package models

// PushPayload is the payload carried by a queued push-delivery task.
type PushPayload struct {
	ProfileID  string            `json:"profileId"`
	ReminderID string            `json:"reminderId,omitempty"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
}
