package models

// Event types published to the catalog topic.
const (
	EventUserRegistered = "user.registered"
	EventAppCreated     = "app.created"
)

// Event is a catalog change notification.
type Event struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the Event* constants
	Timestamp int64  `json:"timestamp"` // Unix seconds
	UserID    string `json:"user_id"`   // Acting user, also used as the message key
	Payload   any    `json:"payload"`   // *User or *App
}
