package constants

// NATS Subjects
const (
	// Record-store change feed
	SubjectBookingChanged = "booking.changed"
	SubjectWorkerChanged  = "worker.changed"

	// Dispatch events
	SubjectBookingAssigned = "dispatch.booking.assigned"
	SubjectDispatchNotify  = "dispatch.notify"

	// Worker location reports
	SubjectWorkerLocation = "worker.location"
)

// NATS queue groups
const (
	QueueGroupDispatch = "dispatch-service"
)
