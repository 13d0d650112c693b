package constants

// Redis key formats
const (
	// Fleet service
	KeyTruckLocation = "truck:location:%s" // Format: truck:location:{truck_id}
	KeyTruckGeo      = "trucks:geo"        // GEO set of all truck positions
	KeyActiveTrucks  = "trucks:active"     // Set of active truck IDs
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
