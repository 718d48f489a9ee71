// Package googleauth validates Google ID tokens against the tokeninfo
// endpoint. The builder's only sign-in method is a Google account; on
// success the caller mints its own session JWT.
package googleauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const tokenInfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"

var (
	ErrInvalidToken     = errors.New("googleauth: token rejected")
	ErrAudienceMismatch = errors.New("googleauth: token issued for a different client")
	ErrEmailNotVerified = errors.New("googleauth: account email is not verified")
)

// Claims is the subset of the tokeninfo response the application uses.
type Claims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Audience      string `json:"aud"`
}

type Verifier struct {
	httpClient *http.Client
	clientID   string
	endpoint   string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		clientID:   clientID,
		endpoint:   tokenInfoEndpoint,
	}
}

// Verify checks the ID token with Google and returns its claims. The
// audience must match the configured OAuth client and the account email
// must be verified.
func (v *Verifier) Verify(idToken string) (*Claims, error) {
	if idToken == "" {
		return nil, ErrInvalidToken
	}

	resp, err := v.httpClient.Get(v.endpoint + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return nil, fmt.Errorf("googleauth: tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("googleauth: decode tokeninfo: %w", err)
	}

	if v.clientID != "" && claims.Audience != v.clientID {
		return nil, ErrAudienceMismatch
	}
	if claims.EmailVerified != "true" {
		return nil, ErrEmailNotVerified
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
