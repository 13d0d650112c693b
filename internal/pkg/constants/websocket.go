package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Fleet events
	EventTruckLocationUpdate = "truck_location_update"
	EventTruckStatusChanged  = "truck_status_changed"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnknownEvent  = "unknown_event"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
