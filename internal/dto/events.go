package dto

const (
	EventApplicationSubmitted = "application.submitted"
	EventStatusChanged        = "application.status_changed"
)

// ApplicationEvent is published to the queue after a successful mutation.
// Consumers (e.g. a notification service) key on ProfileCode/EntryNumber.
type ApplicationEvent struct {
	Event       string `json:"event"`
	ProfileCode int    `json:"profile_code"`
	EntryNumber string `json:"entry_number"`
	Status      string `json:"status"`
	ChangedBy   string `json:"changed_by"`
	OccurredAt  string `json:"occurred_at"`
}
