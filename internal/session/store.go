package session

import (
	"context" // Context for Redis operations
	"strconv" // Account ID conversion
	"time"    // TTL durations

	"github.com/google/uuid"       // Session token generation
	"github.com/redis/go-redis/v9" // Redis client
)

// CookieName is the session cookie set on login.
const CookieName = "session_id"

// keyPrefix namespaces session keys in Redis.
const keyPrefix = "session:"

// Sessions is what handlers and middleware depend on; Store implements it.
type Sessions interface {
	Create(ctx context.Context, accountID uint) (string, error)
	Get(ctx context.Context, token string) (uint, bool, error)
	Destroy(ctx context.Context, token string) error
}

// Store keeps server-side sessions in Redis: an opaque token maps to the
// account ID for the session lifetime. Nothing else is stored client-side.
type Store struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Session lifetime
}

// NewStore returns a session store backed by the given Redis client.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create opens a session for an account and returns the new token.
func (s *Store) Create(ctx context.Context, accountID uint) (string, error) {
	token := uuid.NewString() // Opaque session token
	err := s.rdb.Set(ctx, keyPrefix+token, strconv.FormatUint(uint64(accountID), 10), s.ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to an account ID. The second return value is false
// when the session does not exist or has expired.
func (s *Store) Get(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return 0, false, nil // No such session
	} else if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return uint(id), true, nil
}

// Destroy removes a session unconditionally.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
