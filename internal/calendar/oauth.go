package calendar

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	dom "github.com/Thonkla/PlaceMate/internal/domain"

	"golang.org/x/oauth2"
)

// CookieName carries the encoded calendar credential.
const CookieName = "google_token"

// ErrInvalidCredential is an unauthenticated error: the caller must reconnect the calendar.
var ErrInvalidCredential = fmt.Errorf("%w: invalid calendar credential", dom.ErrUnauthenticated)

// AuthURL is the consent page URL; offline access so a refresh token is issued.
func (g *Google) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for an encoded credential.
func (g *Google) Exchange(ctx context.Context, code string) (string, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	return EncodeToken(token)
}

// EncodeToken turns a token into a cookie-safe opaque string.
func EncodeToken(token *oauth2.Token) (string, error) {
	data, err := json.Marshal(token)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeToken is the inverse of EncodeToken.
func DecodeToken(credential string) (*oauth2.Token, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, ErrInvalidCredential
	}
	data, err := base64.RawURLEncoding.DecodeString(credential)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no access or refresh token", ErrInvalidCredential)
	}
	return &token, nil
}
