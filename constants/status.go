package constants

// DocumentStatus is the canonical status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusUploaded   DocumentStatus = "UPLOADED"   // record created, not yet processed
	DocStatusProcessing DocumentStatus = "PROCESSING" // pipeline in progress
	DocStatusCompleted  DocumentStatus = "COMPLETED"  // extraction + validation stored
	DocStatusFailed     DocumentStatus = "FAILED"     // terminal failure for this document
)

// DocumentStatuses lists all valid document statuses.
var DocumentStatuses = []string{
	string(DocStatusUploaded),
	string(DocStatusProcessing),
	string(DocStatusCompleted),
	string(DocStatusFailed),
}

// BatchStatus is the canonical status for rows in batches.
type BatchStatus string

const (
	BatchStatusRunning   BatchStatus = "RUNNING"
	BatchStatusCompleted BatchStatus = "COMPLETED"
)

// BatchStatuses lists all valid batch statuses.
var BatchStatuses = []string{
	string(BatchStatusRunning),
	string(BatchStatusCompleted),
}
