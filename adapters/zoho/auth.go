package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ShubhanginiSharma627/e-sign-app/config"
	"github.com/ShubhanginiSharma627/e-sign-app/core"
	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

// tokenSafetyMargin is subtracted from the provider-reported lifetime so
// the cached record always expires before the true server-side expiry.
const tokenSafetyMargin = time.Minute

// AuthClient implements ports.TokenSource against Zoho's OAuth token
// endpoint. It reads the cached record first and only performs the
// refresh-token exchange when the record is missing, unreadable or
// expired.
type AuthClient struct {
	cfg        config.ZohoConfig
	store      ports.TokenStore
	httpClient *http.Client
	log        *logrus.Logger
	now        func() time.Time
}

// NewAuthClient creates a new token source backed by the given store.
func NewAuthClient(cfg config.ZohoConfig, store ports.TokenStore, log *logrus.Logger) *AuthClient {
	return &AuthClient{
		cfg:        cfg,
		store:      store,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
		now:        time.Now,
	}
}

// AccessToken returns a still-valid cached token without any network
// call, or refreshes and persists a new one. A failed refresh returns
// core.ErrAuth and writes nothing.
func (c *AuthClient) AccessToken(ctx context.Context) (string, error) {
	now := c.now()
	if cached, err := c.store.Load(ctx); err == nil && cached.Valid(now) {
		return cached.AccessToken, nil
	}

	form := url.Values{}
	form.Set("refresh_token", c.cfg.RefreshToken)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.AccountsURL+"/oauth/v2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Error("Zoho token refresh failed")
		return "", fmt.Errorf("%w: network failure", core.ErrAuth)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		c.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Zoho token refresh rejected")
		return "", fmt.Errorf("%w: token endpoint returned status %d", core.ErrAuth, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil || tr.AccessToken == "" {
		c.log.WithField("body", string(body)).Error("Zoho token response missing access token")
		return "", fmt.Errorf("%w: malformed token response", core.ErrAuth)
	}

	token := &core.CachedToken{
		AccessToken: tr.AccessToken,
		Expiry:      now.UnixMilli() + tr.ExpiresIn*1000 - tokenSafetyMargin.Milliseconds(),
	}
	if err := c.store.Save(ctx, token); err != nil {
		// The token itself is good; a stale cache only costs an
		// extra refresh on the next call.
		c.log.WithError(err).Warn("failed to persist refreshed token")
	}

	return tr.AccessToken, nil
}
