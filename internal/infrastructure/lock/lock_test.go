package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"printdesk/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func TestMemoryLocker_SerializesSameKey(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(ctx, "order:ORD-1")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("expected exclusive access, saw %d holders", maxSeen)
	}
	if l.size() != 0 {
		t.Fatalf("expected entries to be dropped, got %d", l.size())
	}
}

func TestMemoryLocker_IndependentKeys(t *testing.T) {
	l := NewMemoryLocker()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	r1, err := l.Lock(ctx, "order:a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := l.Lock(ctx, "order:b")
	if err != nil {
		t.Fatalf("second key must not block: %v", err)
	}
	r1()
	r2()
}

func TestMemoryLocker_ContextCancel(t *testing.T) {
	l := NewMemoryLocker()
	release, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, "k"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	release()
	release()
	if l.size() != 0 {
		t.Fatalf("expected entries to be dropped, got %d", l.size())
	}
}

func TestNewRedisClient_RequiresAddr(t *testing.T) {
	if _, err := NewRedisClient(config.RedisConfig{}); !errors.Is(err, ErrRedisNotConfigured) {
		t.Fatalf("expected ErrRedisNotConfigured, got %v", err)
	}
}

func TestRedisLocker_Defaults(t *testing.T) {
	l := NewRedisLocker(nil, config.LockConfig{}, zap.NewNop())
	if l.ttl != 10*time.Second || l.retry != 50*time.Millisecond {
		t.Fatalf("unexpected defaults: ttl=%v retry=%v", l.ttl, l.retry)
	}
}

func TestRedisLocker_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	defer client.Close()
	l := NewRedisLocker(client, config.LockConfig{TTL: time.Second}, zap.NewNop())

	if _, err := l.Lock(context.Background(), "order:ORD-1"); err == nil {
		t.Fatalf("expected connection error")
	}
}
