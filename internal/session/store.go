// Package session stores the server-side session records that map a session
// ID to an authenticated user. A session exists from login until logout or
// expiry; deleting a session that is already gone is not an error.
package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "farmlink:session:"

// Store is the session record store.
type Store interface {
	// Create records a session for userID with the given TTL.
	Create(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	// Get resolves a session ID to a user ID. The second return is false
	// when the session does not exist or has expired.
	Get(ctx context.Context, sessionID string) (uint, bool, error)
	// Delete removes a session. Idempotent.
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps session records in redis.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+sessionID, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return uint(userID), true, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}

// MemoryStore keeps session records in process memory. Used in tests and
// single-node setups without redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memorySession)}
}

func (s *MemoryStore) Create(_ context.Context, sessionID string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (uint, bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return 0, false, nil
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return 0, false, nil
	}
	return sess.userID, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
