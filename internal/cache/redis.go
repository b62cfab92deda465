package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/deskbuddy/config"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/viewport"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	desksTTL    time.Duration
	viewportTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, desksTTL, viewportTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		desksTTL:    desksTTL,
		viewportTTL: viewportTTL,
	}
}

// GetDesks returns nil without an error on a cache miss.
func (c *RedisCache) GetDesks(ctx context.Context) ([]domain.Desk, error) {
	data, err := c.client.Get(ctx, desksKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var desks []domain.Desk
	if err := json.Unmarshal(data, &desks); err != nil {
		return nil, err
	}
	return desks, nil
}

func (c *RedisCache) SetDesks(ctx context.Context, desks []domain.Desk) error {
	payload, err := json.Marshal(desks)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, desksKey(), payload, c.desksTTL).Err()
}

// LoadViewport returns the stored floor-plan state of a session and false
// when there is none.
func (c *RedisCache) LoadViewport(ctx context.Context, session string) (viewport.State, bool, error) {
	data, err := c.client.Get(ctx, viewportKey(session)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return viewport.State{}, false, nil
		}
		return viewport.State{}, false, err
	}

	var state viewport.State
	if err := json.Unmarshal(data, &state); err != nil {
		return viewport.State{}, false, fmt.Errorf("decode viewport %s: %w", session, err)
	}
	return state, true, nil
}

func (c *RedisCache) SaveViewport(ctx context.Context, session string, state viewport.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, viewportKey(session), payload, c.viewportTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func desksKey() string {
	return "cache:desks"
}

func viewportKey(session string) string {
	return fmt.Sprintf("viewport:session:%s", session)
}
