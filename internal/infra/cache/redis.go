package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	menuDirtyPrefix = "restriction:menu_dirty:"
	settingsKey     = "restriction:settings_rev"

	dirtyTTL = 24 * time.Hour
)

// Default is the process-wide store, set at startup. Nil when no Redis
// is configured; every method tolerates a nil receiver.
var Default *Store

// Store is the authoring-side invalidation cache. The decision core
// never touches it; admin save handlers mark menus dirty so editor UIs
// recompute mismatch indicators, and bump the settings revision so
// embedders can drop stale snapshots.
type Store struct {
	client *redis.Client
}

// New connects to Redis. A nil Store is returned together with the
// error; callers may run without a cache.
func New(addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log.Printf("[cache] connected to redis at %s", addr)
	return &Store{client: client}, nil
}

func menuDirtyKey(menuID uint) string {
	return fmt.Sprintf("%s%d", menuDirtyPrefix, menuID)
}

// MarkMenuDirty flags a menu whose items or linked pages changed.
func (s *Store) MarkMenuDirty(ctx context.Context, menuID uint) error {
	if s == nil {
		return nil
	}
	return s.client.Set(ctx, menuDirtyKey(menuID), "1", dirtyTTL).Err()
}

// ClearMenuDirty is called after the editor re-renders its mismatch
// indicators.
func (s *Store) ClearMenuDirty(ctx context.Context, menuID uint) error {
	if s == nil {
		return nil
	}
	return s.client.Del(ctx, menuDirtyKey(menuID)).Err()
}

// IsMenuDirty reports whether the menu needs a mismatch recheck.
func (s *Store) IsMenuDirty(ctx context.Context, menuID uint) (bool, error) {
	if s == nil {
		return false, nil
	}
	n, err := s.client.Exists(ctx, menuDirtyKey(menuID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// BumpSettingsRevision invalidates cached settings snapshots held by
// external embedders.
func (s *Store) BumpSettingsRevision(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.client.Incr(ctx, settingsKey).Err()
}

// SettingsRevision returns the current revision, 0 when never bumped.
func (s *Store) SettingsRevision(ctx context.Context) (int64, error) {
	if s == nil {
		return 0, nil
	}
	rev, err := s.client.Get(ctx, settingsKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return rev, err
}
