package core

import "time"

// CachedToken is the single persisted OAuth credential record.
// Expiry is an absolute epoch-millisecond timestamp, matching the
// on-disk JSON format.
type CachedToken struct {
	AccessToken string `json:"access_token"`
	Expiry      int64  `json:"expiry"`
}

// Valid reports whether the token may still be used at the given time.
// A record with a missing or zero expiry is never valid.
func (t *CachedToken) Valid(now time.Time) bool {
	return t != nil && t.AccessToken != "" && now.UnixMilli() < t.Expiry
}
