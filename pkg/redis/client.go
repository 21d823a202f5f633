package redis

import (
	"context"
	"time"

	"github.com/masonhargrave/MedExchange/pkg/errors"
	"github.com/masonhargrave/MedExchange/pkg/logger"
	v9 "github.com/redis/go-redis/v9"
)

type client struct {
	logger *logger.Logger
	config *Config
	rdb    *v9.Client
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger *logger.Logger, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

// Connect establishes the connection and verifies it with a ping.
func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return errors.NewCode(errors.RedisConfigError)
	}
	if c.config.Addr == "" {
		return errors.NewCode(errors.RedisConfigError)
	}

	c.rdb = v9.NewClient(&v9.Options{
		Addr:            c.config.Addr,
		Username:        c.config.Username,
		Password:        c.config.Password,
		DB:              c.config.DB,
		MaxRetries:      c.config.MaxRetries,
		MinRetryBackoff: c.config.MinRetryBackoff,
		MaxRetryBackoff: c.config.MaxRetryBackoff,
		DialTimeout:     c.config.ConnectTimeout,
		ReadTimeout:     c.config.ConnectTimeout,
		WriteTimeout:    c.config.ConnectTimeout,
		PoolSize:        c.config.PoolSize,
		MinIdleConns:    c.config.MinIdleConns,
		PoolTimeout:     c.config.PoolTimeout,
	})

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.NewCode(errors.RedisConnectionError).Wrap(err)
	}

	c.logger.Info("Connected to Redis", logger.Field{
		Key:   "addr",
		Value: c.config.Addr,
	})

	return nil
}

// Disconnect closes the underlying connection pool.
func (c *client) Disconnect(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// Ping checks the connection to Redis.
func (c *client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Get returns the string value stored at key, or an empty string if the key
// does not exist.
func (c *client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == v9.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.TracerFromError(err)
	}
	return val, nil
}

// Set stores value at key with the given expiration.
func (c *client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// Del removes the given keys and returns the number of keys removed.
func (c *client) Del(ctx context.Context, keys ...string) (int64, error) {
	n, err := c.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.TracerFromError(err)
	}
	return n, nil
}
