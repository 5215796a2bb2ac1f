package ports

import (
	"context"

	"github.com/ShubhanginiSharma627/e-sign-app/core"
)

// SignClient submits a document to the signature provider: uploads it,
// creates the signature request and attaches the field placements.
// Both phases use the same access token.
type SignClient interface {
	Submit(ctx context.Context, document []byte, recipientEmail, accessToken string) (*core.SubmissionResult, error)
}
