package constants

// NATS Subjects
const (
	// Fleet service
	SubjectTruckLocationUpdated = "fleet.location.updated"
	SubjectTruckStatusChanged   = "fleet.truck.status"
)
