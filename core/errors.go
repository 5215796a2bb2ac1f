package core

import "errors"

var (
	ErrAuth             = errors.New("token acquisition failed")
	ErrSubmission       = errors.New("signature request submission failed")
	ErrNoSignAction     = errors.New("no SIGN action in signature request")
	ErrDocumentNotFound = errors.New("document not found")
)
