package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// --- small helpers ---

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

// --- bodyHash ---

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

// --- buildKey ---

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/api/loans/:loan_id/pay", strings.Repeat("b", 32), strings.Repeat("a", 32))
	if !strings.HasPrefix(k, "idemp:post:/api/loans/:loan_id/pay:") {
		t.Fatalf("buildKey prefix mismatch: %q", k)
	}
	if !strings.Contains(k, ":"+strings.Repeat("b", 32)+":") || !strings.HasSuffix(k, strings.Repeat("a", 32)) {
		t.Fatalf("buildKey missing caller/request segments: %q", k)
	}
}

// --- normalizeRequestKey ---

func Test_normalizeRequestKey(t *testing.T) {
	t.Run("accepts uuid and 32-hex", func(t *testing.T) {
		valid := []string{
			"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88", // UUID (lowercase)
			"3F9A6A1B-3D54-4FBE-8B3A-6B3E8D6B2C88", // UUID (uppercase, lowercased)
			strings.Repeat("a", 32),                // 32-char lowercase hex
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",     // 32-char hex (no dashes)
			"  3f9a6a1b3d544fbe8b3a6b3e8d6b2c88  ", // surrounding whitespace
		}
		for _, s := range valid {
			got, ok := normalizeRequestKey(s)
			if !ok {
				t.Fatalf("normalizeRequestKey should accept %q", s)
			}
			if got != strings.ToLower(strings.TrimSpace(s)) {
				t.Fatalf("normalizeRequestKey(%q) = %q, not lowercased/trimmed", s, got)
			}
		}
	})

	t.Run("rejects bad formats", func(t *testing.T) {
		invalid := []string{
			"",
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
			"3f9a6a1b3d544fbe8b3a6b3e8d6b2c880", // 33 chars
			"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",  // non-hex chars
			"not-a-key",
		}
		for _, s := range invalid {
			if _, ok := normalizeRequestKey(s); ok {
				t.Fatalf("normalizeRequestKey should reject %q", s)
			}
		}
	})
}

// --- Redis helpers: provisionalSet, loadEntry, saveFinal ---

func Test_provisionalSet_LoadEntry(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()

	key := "idemp:post:/api/loans/:loan_id/pay:" + strings.Repeat("b", 32) + ":" + strings.Repeat("a", 32)
	entry := idempEntry{
		InProgress: true,
		BodySHA256: bodyHash([]byte(`{"amount_paid":1}`)),
		RequestKey: strings.Repeat("a", 32),
		CreatedAt:  time.Now().UTC(),
	}

	// First SetNX should succeed
	ok, err := provisionalSet(context.Background(), rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("provisionalSet 1: ok=%v err=%v", ok, err)
	}

	// TTL should be close to provisionalLockTTL
	ttl := rdb.TTL(context.Background(), key).Val()
	if ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("provisional TTL not set correctly: %v", ttl)
	}

	// Second SetNX should fail (already exists)
	ok, err = provisionalSet(context.Background(), rdb, key, entry)
	if err != nil {
		t.Fatalf("provisionalSet 2 err: %v", err)
	}
	if ok {
		t.Fatalf("provisionalSet 2 should be false, got true")
	}

	// loadEntry returns the same content (spot check a few fields)
	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("loadEntry err: %v", err)
	}
	if !got.InProgress || got.RequestKey != entry.RequestKey || got.BodySHA256 != entry.BodySHA256 {
		t.Fatalf("loaded entry mismatch: %+v vs %+v", got, entry)
	}
}

func Test_saveFinal_Load_TTL(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()

	key := "idemp:post:/api/loans/:loan_id/pay:" + strings.Repeat("b", 32) + ":" + strings.Repeat("a", 32)
	final := idempEntry{
		InProgress: false,
		Code:       200,
		Body:       []byte(`{"ok":true}`),
		BodySHA256: bodyHash([]byte(`{"ok":true}`)),
		RequestKey: strings.Repeat("a", 32),
		CreatedAt:  time.Now().UTC(),
	}

	ttlWant := 5 * time.Second
	if err := saveFinal(context.Background(), rdb, key, final, ttlWant); err != nil {
		t.Fatalf("saveFinal err: %v", err)
	}

	// Check TTL is set (allow a small drift)
	ttl := rdb.TTL(context.Background(), key).Val()
	if ttl <= 0 || ttl > ttlWant {
		t.Fatalf("final TTL out of range: got %v want <= %v", ttl, ttlWant)
	}

	// And the content is retrievable
	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("load after final err: %v", err)
	}
	if got.Code != 200 || string(got.Body) != `{"ok":true}` || got.InProgress {
		t.Fatalf("final entry mismatch: %+v", got)
	}
}
