package ports

import "context"

// TokenSource yields an access token usable for provider API calls,
// refreshing it when the cached one has expired.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
