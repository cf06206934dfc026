package settings

// EventType defines the type of change being broadcast.
type EventType string

const (
	EventLocaleChanged       EventType = "locale_changed"
	EventLinksConsentChanged EventType = "links_consent_changed"
	EventRestored            EventType = "restored"
)

// Event carries the new value of the setting that changed.
type Event struct {
	Type EventType
	Data interface{}
}

// Subscriber is a channel that receives events.
type Subscriber chan Event
