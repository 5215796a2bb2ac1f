package ports

import (
	"context"

	"github.com/ShubhanginiSharma627/e-sign-app/core"
)

// TokenStore persists the single cached credential record.
// Load returns an error when no usable record exists; callers treat
// any Load error as a cache miss.
type TokenStore interface {
	Load(ctx context.Context) (*core.CachedToken, error)
	Save(ctx context.Context, token *core.CachedToken) error
}
