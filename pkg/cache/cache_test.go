package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCache_SetGet(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("artifact"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("Get() = miss, want hit")
	}
	if string(data) != "artifact" {
		t.Errorf("Get() = %q, want %q", data, "artifact")
	}
}

func TestFileCache_Miss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	_, hit, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() = hit, want miss")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCache_Delete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("deleted entry should be a miss")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() of missing key error = %v, want nil", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("NullCache should never hit")
	}
}

func TestFieldKey(t *testing.T) {
	base := Params{SourceHash: "abc", SourceSize: 3000, MaxDist: 8, TargetSize: 187}

	if FieldKey(base) != FieldKey(base) {
		t.Error("FieldKey must be deterministic")
	}

	variants := []Params{
		{SourceHash: "def", SourceSize: 3000, MaxDist: 8, TargetSize: 187},
		{SourceHash: "abc", SourceSize: 2000, MaxDist: 8, TargetSize: 187},
		{SourceHash: "abc", SourceSize: 3000, MaxDist: 9, TargetSize: 187},
		{SourceHash: "abc", SourceSize: 3000, MaxDist: 8, TargetSize: 100},
		{SourceHash: "abc", SourceSize: 3000, MaxDist: 8, TargetSize: 187, Negate: true},
	}
	seen := map[string]bool{FieldKey(base): true}
	for i, p := range variants {
		key := FieldKey(p)
		if seen[key] {
			t.Errorf("variant %d collides with a previous key", i)
		}
		seen[key] = true
	}
}

func TestHash(t *testing.T) {
	if len(Hash([]byte("data"))) != 64 {
		t.Error("Hash() should return 64 hex characters")
	}
	if Hash([]byte("a")) == Hash([]byte("b")) {
		t.Error("different inputs should hash differently")
	}
}
