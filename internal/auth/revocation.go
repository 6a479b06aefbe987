package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// RevocationStore keeps logged-out token ids in Redis until they would expire anyway.
type RevocationStore struct {
	rdb *redis.Client
}

// NewRevocationStore returns a new revocation store.
func NewRevocationStore(rdb *redis.Client) *RevocationStore {
	return &RevocationStore{rdb: rdb}
}

// Revoke marks token id as revoked for ttl.
func (s *RevocationStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedKeyPrefix+id, "1", ttl).Err()
}

// IsRevoked returns true if the token id was revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
