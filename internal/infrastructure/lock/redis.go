package lock

import (
	"context"
	"errors"
	"time"

	"printdesk/internal/infrastructure/config"
	"printdesk/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	keyPrefix      = "printdesk:lock:"
	releaseTimeout = 2 * time.Second
)

var ErrRedisNotConfigured = errors.New("redis address is required for the redis lock")

// releaseScript deletes the key only while it still carries our token, so an
// expired lock taken over by another holder is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker is a lease based lock shared by every replica. A holder that
// dies releases the key when ttl expires.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	log    *zap.Logger
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, ErrRedisNotConfigured
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}), nil
}

func NewRedisLocker(client *redis.Client, cfg config.LockConfig, logger *zap.Logger) *RedisLocker {
	l := &RedisLocker{client: client, ttl: cfg.TTL, retry: cfg.Retry, log: logger}
	if l.ttl <= 0 {
		l.ttl = 10 * time.Second
	}
	if l.retry <= 0 {
		l.retry = 50 * time.Millisecond
	}
	return l
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	k := keyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, k, token, l.ttl).Result()
		if err != nil {
			l.log.Error("[lock][redis] acquire failed", zap.String("key", key), zap.Error(err))
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}

	return func() {
		rctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(rctx, l.client, []string{k}, token).Err(); err != nil {
			l.log.Warn("[lock][redis] release failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
