package redis

import (
	"context"
	"encoding/json"
	"time"

	"mingle/internal/config"
	userPort "mingle/internal/ports/user"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const identityTTL = 10 * time.Minute

// IdentityCacheRedis is a read-through cache in front of an identity
// resolver. Identities are display-only and immutable from this side, so a
// short TTL is plenty. Any Redis fault degrades to the wrapped resolver.
type IdentityCacheRedis struct {
	Client *redis.Client
	Source userPort.IdentityResolver
}

func NewIdentityCacheRedis(client *redis.Client, source userPort.IdentityResolver) *IdentityCacheRedis {
	return &IdentityCacheRedis{
		Client: client,
		Source: source,
	}
}

func identityKey(id string) string {
	return "identity:" + id
}

func (r *IdentityCacheRedis) ResolveMany(ctx context.Context, ids []string) (map[string]*userPort.IdentityDTO, error) {
	identities := make(map[string]*userPort.IdentityDTO, len(ids))
	if len(ids) == 0 {
		return identities, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = identityKey(id)
	}

	vals, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		config.Logger.Warn("⚠️ Redis identity lookup failed, falling back to source", zap.Error(err))
		return r.Source.ResolveMany(ctx, ids)
	}

	var misses []string
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			misses = append(misses, ids[i])
			continue
		}
		var dto userPort.IdentityDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			misses = append(misses, ids[i])
			continue
		}
		identities[ids[i]] = &dto
	}

	if len(misses) == 0 {
		return identities, nil
	}

	resolved, err := r.Source.ResolveMany(ctx, misses)
	if err != nil {
		return nil, err
	}

	for id, dto := range resolved {
		identities[id] = dto
		raw, err := json.Marshal(dto)
		if err != nil {
			continue
		}
		// Unresolvable ids are not cached negatively; the feed substitutes a
		// placeholder for them anyway.
		if err := r.Client.Set(ctx, identityKey(id), raw, identityTTL).Err(); err != nil {
			config.Logger.Warn("⚠️ Could not cache identity", zap.String("userID", id), zap.Error(err))
		}
	}
	return identities, nil
}
