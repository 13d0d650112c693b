package fleet

import "errors"

// Sentinel errors returned by the fleet service, mapped to HTTP status codes
// by the transport handlers.
var (
	// ErrTruckNotFound is returned when no truck exists for the given identifier
	ErrTruckNotFound = errors.New("truck not found")

	// ErrTruckExists is returned on registration with a duplicate truck identifier
	ErrTruckExists = errors.New("truck already registered")

	// ErrInvalidCoordinates is returned when a latitude/longitude pair is out of
	// geographic range
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	// ErrMissingFields is returned when a request omits required fields
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidStatus is returned when a status value is not one the registry accepts
	ErrInvalidStatus = errors.New("invalid truck status")

	// ErrInvalidAccessCode is returned when a driver session authentication fails
	ErrInvalidAccessCode = errors.New("invalid access code")
)
