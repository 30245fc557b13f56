package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mentoria-hub/mentoria-platform/internal/application/auth"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
)

// IdentityCache implements auth.IdentityCache on top of the generic
// Cache. Keys are namespaced by user ID.
type IdentityCache struct {
	cache *Cache
}

// NewIdentityCache creates a new IdentityCache.
func NewIdentityCache(cache *Cache) *IdentityCache {
	return &IdentityCache{cache: cache}
}

// Get returns the cached identity, or shared.ErrNotFound on a miss.
func (c *IdentityCache) Get(ctx context.Context, userID uuid.UUID) (*auth.Identity, error) {
	var identity auth.Identity
	err := c.cache.Get(ctx, identityKey(userID), &identity)
	if errors.Is(err, ErrCacheMiss) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// Set stores the identity with a TTL.
func (c *IdentityCache) Set(ctx context.Context, identity *auth.Identity, ttl time.Duration) error {
	if identity == nil {
		return nil
	}
	return c.cache.Set(ctx, identityKey(identity.UserID), identity, ttl)
}

// Invalidate drops the cached identity, forcing the next request to
// resolve from storage. Called after approval or role changes.
func (c *IdentityCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.cache.Delete(ctx, identityKey(userID))
}

func identityKey(userID uuid.UUID) string {
	return PrefixIdentity + userID.String()
}
