package core

import "encoding/json"

// SubmissionState tracks the progress of a signature-request submission.
// A submission starts as Created, becomes Uploaded once the document has
// been uploaded and all identifiers extracted, and Submitted once the
// field placements have been accepted. Field placement is never attempted
// unless the submission reached Uploaded.
type SubmissionState string

const (
	SubmissionCreated   SubmissionState = "created"
	SubmissionUploaded  SubmissionState = "uploaded"
	SubmissionSubmitted SubmissionState = "submitted"
)

// SubmissionResult holds the outcome of a completed two-phase submission.
// The raw provider response bodies are passed through to the caller
// without local interpretation.
type SubmissionResult struct {
	State           SubmissionState
	RequestID       string
	DocumentID      string
	ActionID        string
	InitialResponse json.RawMessage
	SubmitResponse  json.RawMessage
}
