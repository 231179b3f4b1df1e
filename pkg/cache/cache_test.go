package cache

import (
	"context"
	"testing"
	"time"

	"github.com/swaplab/swapplan/pkg/perm"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always report a miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before any write
	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get before Set: hit=%v err=%v", hit, err)
	}

	// Round trip
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "value" {
		t.Errorf("Get = %q, want %q", data, "value")
	}

	// Delete
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "gone"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	// Already-expired entry must be treated as a miss.
	if err := c.Set(ctx, "key", []byte("value"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should miss")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("different inputs should produce different hashes")
	}

	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	labels := perm.ParseAll([]string{"0", "1", "2"})
	target := perm.ParseAll([]string{"2", "0", "1"})

	k1 := k.PlanKey(labels, target, false)
	k2 := k.PlanKey(labels, target, false)
	if k1 != k2 {
		t.Error("PlanKey should be deterministic")
	}

	// Mode is part of the key.
	if k1 == k.PlanKey(labels, target, true) {
		t.Error("subset mode should change the key")
	}

	// Label identity is part of the key: 2 and "2" are different slots.
	other := []perm.Label{perm.Str("2"), perm.Int(0), perm.Int(1)}
	if k1 == k.PlanKey(labels, other, false) {
		t.Error("integer and string labels should key differently")
	}

	a1 := k.ArtifactKey("hash123", "svg")
	a2 := k.ArtifactKey("hash123", "png")
	if a1 == a2 {
		t.Error("different formats should produce different artifact keys")
	}
}
