// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// branding.go provides a Valkey-backed cache for resolved branding
// payloads. Every share and export call needs branding, so caching it
// keeps those calls off the settings and companies tables.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// brandingKeyPrefix is the Valkey key prefix for cached branding payloads.
	brandingKeyPrefix = "branding:"

	// DefaultBrandingTTL is how long a resolved branding payload stays cached.
	DefaultBrandingTTL = 5 * time.Minute
)

// BrandingCache manages cached branding JSON in Valkey.
type BrandingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBrandingCache creates a branding cache backed by the given Valkey client.
func NewBrandingCache(client *redis.Client, ttl time.Duration) *BrandingCache {
	if ttl == 0 {
		ttl = DefaultBrandingTTL
	}
	return &BrandingCache{client: client, ttl: ttl}
}

// Get retrieves the cached payload for a company key. Returns false on miss.
func (bc *BrandingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := bc.client.Get(ctx, brandingKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("branding cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a resolved payload for a company key with the configured TTL.
func (bc *BrandingCache) Set(ctx context.Context, key string, payload []byte) {
	if err := bc.client.Set(ctx, brandingKeyPrefix+key, payload, bc.ttl).Err(); err != nil {
		slog.Warn("branding cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a company's cached branding, e.g. after a settings
// or company profile update.
func (bc *BrandingCache) Invalidate(ctx context.Context, key string) {
	if err := bc.client.Del(ctx, brandingKeyPrefix+key).Err(); err != nil {
		slog.Warn("branding cache invalidate error", "key", key, "error", err)
	}
}
