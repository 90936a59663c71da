package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store hands a rendered plan from the submit request to the results request.
// Entries expire after a TTL; nothing is kept beyond that.
type Store interface {
	Put(ctx context.Context, plan Plan) error
	Get(ctx context.Context, id string) (Plan, error)
}

const redisKeyPrefix = "tripplanner:plan:"

// RedisStore keeps plans in Redis with SET ... EX ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by the given client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, plan Plan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+plan.ID, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set plan %s: %w", plan.ID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Plan, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Plan{}, ErrPlanNotFound
	}
	if err != nil {
		return Plan{}, fmt.Errorf("redis get plan %s: %w", id, err)
	}
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return plan, nil
}

type memoryEntry struct {
	plan      Plan
	expiresAt time.Time
}

// MemoryStore is the single-process Store used when no Redis address is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, plan Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)
	s.entries[plan.ID] = memoryEntry{plan: plan, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return Plan{}, ErrPlanNotFound
	}
	return entry.plan, nil
}

// Len reports the number of entries, expired ones included until the next Put.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) purgeLocked(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
