package model

// RequestStatus represents where a download request is in its single pass
type RequestStatus string

const (
	// RequestStatusIdle means no request is being handled
	RequestStatusIdle RequestStatus = "Idle"

	// RequestStatusResolving means the link is being resolved into streams
	RequestStatusResolving RequestStatus = "Resolving"

	// RequestStatusAwaitingLocation means the folder dialog is open
	RequestStatusAwaitingLocation RequestStatus = "AwaitingLocation"

	// RequestStatusDownloading means the stream is being written to disk
	RequestStatusDownloading RequestStatus = "Downloading"

	// RequestStatusCompleted means the file was written
	RequestStatusCompleted RequestStatus = "Completed"

	// RequestStatusNoStream means no stream matched the selected formats
	RequestStatusNoStream RequestStatus = "NoStream"

	// RequestStatusCancelled means the user dismissed the folder dialog or closed the window
	RequestStatusCancelled RequestStatus = "Cancelled"

	// RequestStatusFailed means any step returned an error
	RequestStatusFailed RequestStatus = "Failed"
)

// String returns the string representation of RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

// IsActive returns true while the request still owns the window
func (rs RequestStatus) IsActive() bool {
	return rs == RequestStatusResolving || rs == RequestStatusAwaitingLocation || rs == RequestStatusDownloading
}
