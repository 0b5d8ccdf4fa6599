package constants

// Redis key formats
const (
	KeyWorkerGeo        = "workers:geo"        // GeoHash set of all worker locations
	KeyWorkerLocation   = "worker:location:%s" // Format: worker:location:{worker_id}
	KeyAvailableWorkers = "workers:available"  // Set of available worker IDs
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
