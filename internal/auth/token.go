package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

// Claims carried by an identity token.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 identity tokens.
type Tokens struct {
	secret  []byte
	ttl     time.Duration
	revoked *RevocationStore
	now     func() time.Time
}

// NewTokens returns a token issuer/verifier. revoked may be nil to disable logout revocation.
func NewTokens(secret string, ttl time.Duration, revoked *RevocationStore) *Tokens {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, revoked: revoked, now: time.Now}
}

// Issue signs a token for userID and returns it with its expiry.
func (t *Tokens) Issue(userID int64) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify returns the user id of a valid credential. Every failure, including
// an unreachable revocation store, is dom.ErrUnauthenticated.
func (t *Tokens) Verify(ctx context.Context, credential string) (int64, error) {
	claims, err := t.parse(credential)
	if err != nil {
		return 0, err
	}
	if t.revoked != nil {
		revoked, err := t.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return 0, fmt.Errorf("%w: revocation check failed", dom.ErrUnauthenticated)
		}
		if revoked {
			return 0, fmt.Errorf("%w: token revoked", dom.ErrUnauthenticated)
		}
	}
	return claims.UserID, nil
}

// Revoke denylists a still-valid credential until it expires. Invalid credentials are ignored.
func (t *Tokens) Revoke(ctx context.Context, credential string) error {
	if t.revoked == nil {
		return nil
	}
	claims, err := t.parse(credential)
	if err != nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(t.now())
	if ttl <= 0 {
		return nil
	}
	return t.revoked.Revoke(ctx, claims.ID, ttl)
}

func (t *Tokens) parse(credential string) (*Claims, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, fmt.Errorf("%w: missing token", dom.ErrUnauthenticated)
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("%w: token expired", dom.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("%w: invalid token", dom.ErrUnauthenticated)
	}
	if claims.UserID <= 0 || claims.ExpiresAt == nil || claims.ID == "" {
		return nil, fmt.Errorf("%w: incomplete claims", dom.ErrUnauthenticated)
	}
	return claims, nil
}
