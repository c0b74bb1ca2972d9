package store

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/grid"
)

// Redis key layout: one JSON value per home plus a set indexing the home
// names, so listing never needs SCAN.
const (
	redisLayoutPrefix = "homedeck:layout:"
	redisHomesKey     = "homedeck:homes"
)

// Redis is a redis-backed layout store for multi-instance deployments.
type Redis struct {
	client *redis.Client
}

// RedisConfig holds connection settings for the redis store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis connects to redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to redis at %s", cfg.Addr)
	}
	return &Redis{client: client}, nil
}

// Layout fetches the layout for home, or returns an empty layout if absent.
func (s *Redis) Layout(ctx context.Context, home string) (grid.Layout, error) {
	if err := errors.ValidateHomeName(home); err != nil {
		return grid.Layout{}, err
	}

	data, err := s.client.Get(ctx, redisLayoutPrefix+home).Bytes()
	if err == redis.Nil {
		return grid.NewLayout(home), nil
	}
	if err != nil {
		return grid.Layout{}, errors.Wrap(errors.ErrCodeStore, err, "read layout for %s", home)
	}

	var l grid.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return grid.Layout{}, errors.Wrap(errors.ErrCodeStore, err, "parse layout for %s", home)
	}
	return l, nil
}

// SetLayout stores the layout and indexes its home name.
func (s *Redis) SetLayout(ctx context.Context, l grid.Layout) error {
	if err := errors.ValidateHomeName(l.Home); err != nil {
		return err
	}

	data, err := json.Marshal(l)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal layout for %s", l.Home)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisLayoutPrefix+l.Home, data, 0)
	pipe.SAdd(ctx, redisHomesKey, l.Home)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write layout for %s", l.Home)
	}
	return nil
}

// Delete removes the layout and unindexes the home.
func (s *Redis) Delete(ctx context.Context, home string) error {
	if err := errors.ValidateHomeName(home); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisLayoutPrefix+home)
	pipe.SRem(ctx, redisHomesKey, home)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete layout for %s", home)
	}
	return nil
}

// DeleteAll removes every indexed layout and the index itself.
func (s *Redis) DeleteAll(ctx context.Context) error {
	homes, err := s.client.SMembers(ctx, redisHomesKey).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "list homes")
	}

	pipe := s.client.TxPipeline()
	for _, home := range homes {
		pipe.Del(ctx, redisLayoutPrefix+home)
	}
	pipe.Del(ctx, redisHomesKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete layouts")
	}
	return nil
}

// Homes lists the indexed home names, sorted.
func (s *Redis) Homes(ctx context.Context) ([]string, error) {
	homes, err := s.client.SMembers(ctx, redisHomesKey).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list homes")
	}
	slices.Sort(homes)
	return homes, nil
}

// Close closes the redis connection.
func (s *Redis) Close(ctx context.Context) error {
	return s.client.Close()
}

// Ensure Redis implements Store.
var _ Store = (*Redis)(nil)
