package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/John2013/phone-book/config"
)

// ErrUnavailable is returned when the key-value store cannot be reached
// before the configured timeout.
var ErrUnavailable = errors.New("store unavailable")

var client *redis.Client
var opTimeout time.Duration

func Init() error {
	configuration := config.GetConfig()

	opTimeout = time.Duration(configuration.STORE_TIMEOUT_SECONDS) * time.Second
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	poolSize := configuration.STORE_POOL_SIZE
	if poolSize <= 0 {
		poolSize = 10
	}

	client = redis.NewClient(&redis.Options{
		Addr:         configuration.STORE_HOST + ":" + configuration.STORE_PORT,
		Password:     configuration.STORE_PASSWORD,
		DB:           configuration.STORE_DB,
		DialTimeout:  opTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
		PoolSize:     poolSize,
	})

	return Ping(context.Background())
}

func Manager() *redis.Client {
	return client
}

// Ping checks store connectivity, bounded by the operation timeout.
func Ping(ctx context.Context) error {
	ctx, cancel := opContext(ctx)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return wrapErr(err)
	}
	return nil
}

// Get returns the value for key and whether the key exists.
func Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(err)
	}
	return val, true, nil
}

// GetMany returns the values for keys in order; missing keys yield nil entries.
func GetMany(ctx context.Context, keys ...string) ([]interface{}, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	ctx, cancel := opContext(ctx)
	defer cancel()
	vals, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, wrapErr(err)
	}
	return vals, nil
}

func Set(ctx context.Context, key string, value string) error {
	ctx, cancel := opContext(ctx)
	defer cancel()
	if err := client.Set(ctx, key, value, 0).Err(); err != nil {
		return wrapErr(err)
	}
	return nil
}

// SetIfAbsent stores value under key only when the key does not exist yet.
// It reports whether the value was stored.
func SetIfAbsent(ctx context.Context, key string, value string) (bool, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	stored, err := client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, wrapErr(err)
	}
	return stored, nil
}

// Del removes key and reports whether it existed.
func Del(ctx context.Context, key string) (bool, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	deleted, err := client.Del(ctx, key).Result()
	if err != nil {
		return false, wrapErr(err)
	}
	return deleted > 0, nil
}

// ScanKeys enumerates keys matching pattern starting at cursor. The returned
// cursor is zero once the keyspace is exhausted.
func ScanKeys(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	keys, next, err := client.Scan(ctx, cursor, pattern, count).Result()
	if err != nil {
		return nil, 0, wrapErr(err)
	}
	return keys, next, nil
}

func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// wrapErr folds every store round-trip failure into ErrUnavailable so callers
// deal with a single taxonomy. redis.Nil is handled before this point.
func wrapErr(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
