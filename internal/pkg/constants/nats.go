package constants

// NATS Subjects
const (
	// Collection status events, suffixed with the new status in lower case
	SubjectCollectionStatus = "collection.status.%s"
	// SubjectCollectionAll matches every collection status event
	SubjectCollectionAll = "collection.status.>"
)
