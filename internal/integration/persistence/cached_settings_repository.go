// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	"github.com/inkprofit/backend/internal/integration/persistence/model"
)

const (
	settingsCachePrefix   = "inkprofit:settings:"
	settingsVersionPrefix = "inkprofit:settings-version:"
)

// cachedSettingsRepository is a read-through Redis cache in front of another SettingsRepository.
// Redis failures are logged and the call falls through to the wrapped repository.
//
// Every save bumps a per-key version counter. A read that missed the cache only keeps
// what it wrote back if the version is unchanged, so a save racing the fill cannot
// leave the old value cached until the TTL expires.
type cachedSettingsRepository struct {
	next  adapter.SettingsRepository
	redis *redis.Client
	ttl   time.Duration
}

// NewCachedSettingsRepository wraps next with a Redis cache. A nil client returns next unchanged.
func NewCachedSettingsRepository(next adapter.SettingsRepository, client *redis.Client, ttl time.Duration) adapter.SettingsRepository {
	if client == nil {
		return next
	}
	return &cachedSettingsRepository{
		next:  next,
		redis: client,
		ttl:   ttl,
	}
}

// GetCostProfile loads the cost profile, preferring the cached copy.
func (r *cachedSettingsRepository) GetCostProfile(ctx context.Context) (*entity.CostProfile, error) {
	var doc model.CostProfileDocument
	if r.get(ctx, model.SettingKeyCostProfile, &doc) {
		profile := costProfileFromDocument(doc)
		return &profile, nil
	}

	version, versioned := r.version(ctx, model.SettingKeyCostProfile)
	profile, err := r.next.GetCostProfile(ctx)
	if err != nil {
		return nil, err
	}
	if versioned {
		r.fill(ctx, model.SettingKeyCostProfile, version, costProfileToDocument(*profile))
	}
	return profile, nil
}

// SaveCostProfile writes through and invalidates the cached copy.
func (r *cachedSettingsRepository) SaveCostProfile(ctx context.Context, profile entity.CostProfile) error {
	if err := r.next.SaveCostProfile(ctx, profile); err != nil {
		return err
	}
	r.bump(ctx, model.SettingKeyCostProfile)
	r.invalidate(ctx, model.SettingKeyCostProfile)
	return nil
}

// GetStudioProfile loads the studio profile, preferring the cached copy.
func (r *cachedSettingsRepository) GetStudioProfile(ctx context.Context) (*entity.StudioProfile, error) {
	var doc model.StudioProfileDocument
	if r.get(ctx, model.SettingKeyStudioProfile, &doc) {
		profile := studioProfileFromDocument(doc)
		return &profile, nil
	}

	version, versioned := r.version(ctx, model.SettingKeyStudioProfile)
	profile, err := r.next.GetStudioProfile(ctx)
	if err != nil {
		return nil, err
	}
	if versioned {
		r.fill(ctx, model.SettingKeyStudioProfile, version, studioProfileToDocument(*profile))
	}
	return profile, nil
}

// SaveStudioProfile writes through and invalidates the cached copy.
func (r *cachedSettingsRepository) SaveStudioProfile(ctx context.Context, profile entity.StudioProfile) error {
	if err := r.next.SaveStudioProfile(ctx, profile); err != nil {
		return err
	}
	r.bump(ctx, model.SettingKeyStudioProfile)
	r.invalidate(ctx, model.SettingKeyStudioProfile)
	return nil
}

func (r *cachedSettingsRepository) get(ctx context.Context, key string, dest any) bool {
	raw, err := r.redis.Get(ctx, settingsCachePrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Settings cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("Discarding corrupt settings cache entry", "key", key, "error", err)
		r.invalidate(ctx, key)
		return false
	}
	return true
}

// fill caches value read at the given version and drops it again if a save got in between.
func (r *cachedSettingsRepository) fill(ctx context.Context, key string, version int64, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, settingsCachePrefix+key, raw, r.ttl).Err(); err != nil {
		slog.Warn("Settings cache write failed", "key", key, "error", err)
		return
	}

	if current, ok := r.version(ctx, key); !ok || current != version {
		r.invalidate(ctx, key)
	}
}

// version returns the save counter of key. ok is false when Redis could not be read.
func (r *cachedSettingsRepository) version(ctx context.Context, key string) (int64, bool) {
	v, err := r.redis.Get(ctx, settingsVersionPrefix+key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		slog.Warn("Settings cache version read failed", "key", key, "error", err)
		return 0, false
	}
	return v, true
}

func (r *cachedSettingsRepository) bump(ctx context.Context, key string) {
	if err := r.redis.Incr(ctx, settingsVersionPrefix+key).Err(); err != nil {
		slog.Warn("Settings cache version bump failed", "key", key, "error", err)
	}
}

func (r *cachedSettingsRepository) invalidate(ctx context.Context, key string) {
	if err := r.redis.Del(ctx, settingsCachePrefix+key).Err(); err != nil {
		slog.Warn("Settings cache invalidation failed", "key", key, "error", err)
	}
}
