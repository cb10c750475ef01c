package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func buildKey(method, path, userID, requestKey string) string {
	return "idemp:" + strings.ToLower(method) + ":" + path + ":" + userID + ":" + requestKey
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// normalizeRequestKey accepts a UUID (any case, canonical form) or a
// 32-char lowercase hex id and returns the lowercased key.
func normalizeRequestKey(k string) (string, bool) {
	k = strings.ToLower(strings.TrimSpace(k))
	if _, err := uuid.Parse(k); err == nil && len(k) == 36 {
		return k, true
	}
	if reHex32.MatchString(k) {
		return k, true
	}
	return "", false
}

// ---- Redis helpers ----
func provisionalSet(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, error) {
	payload, _ := json.Marshal(entry)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	_ = json.Unmarshal(v, &e)
	return e, nil
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, entry idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
