package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

// setupRedis starts an in-process Redis and returns a connected cache.
func setupRedis(t *testing.T) Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedisCache(RedisOptions{
		URL:            fmt.Sprintf("redis://%s", mr.Addr()),
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := setupRedis(t)

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get before Set: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "value" {
		t.Errorf("Get = %q, want %q", data, "value")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestRedisCacheNoExpiry(t *testing.T) {
	ctx := context.Background()
	c := setupRedis(t)

	// ttl of zero means persist without expiration.
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Error("entry with zero ttl should persist")
	}
}

func TestRedisCacheConnectFailure(t *testing.T) {
	if _, err := NewRedisCache(RedisOptions{URL: "not a url"}); err == nil {
		t.Error("invalid URL should fail")
	}

	_, err := NewRedisCache(RedisOptions{
		URL:            "redis://127.0.0.1:1",
		ConnectTimeout: 200 * time.Millisecond,
	})
	if err == nil {
		t.Error("unreachable server should fail the initial ping")
	}
}
