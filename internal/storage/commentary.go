package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aramps/internal/textnorm"
	"github.com/rs/zerolog/log"
)

// Commentary is one cached AI answer for a team.
type Commentary struct {
	Team      []string  `json:"team"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type memEntry struct {
	c       Commentary
	expires time.Time
}

// CommentaryStore caches team commentary in memory and, when Redis is
// enabled, in Redis under prefix + TeamKey.
type CommentaryStore struct {
	redis  *RedisClient
	prefix string
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]memEntry
}

// NewCommentaryStore creates a store. A nil redis client keeps everything
// in memory.
func NewCommentaryStore(redis *RedisClient, prefix string, ttl time.Duration) *CommentaryStore {
	return &CommentaryStore{
		redis:   redis,
		prefix:  prefix,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memEntry),
	}
}

// TeamKey identifies a team regardless of label order, spacing or case.
func TeamKey(team []string) string {
	keys := make([]string, 0, len(team))
	for _, c := range team {
		keys = append(keys, textnorm.Normalize(c))
	}
	slices.Sort(keys)
	return strings.Join(keys, ",")
}

// Get returns the cached commentary for team.
func (s *CommentaryStore) Get(ctx context.Context, team []string) (*Commentary, bool) {
	key := TeamKey(team)

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		if s.ttl <= 0 || s.now().Before(e.expires) {
			c := e.c
			return &c, true
		}
		s.forget(key, e.expires)
	}

	data, err := s.redis.Get(ctx, s.prefix+key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("commentary cache read failed")
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	var c Commentary
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("commentary cache entry corrupt")
		if err := s.redis.Delete(ctx, s.prefix+key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to drop corrupt commentary")
		}
		return nil, false
	}
	s.remember(key, c)
	return &c, true
}

// Put stores commentary for team.
func (s *CommentaryStore) Put(ctx context.Context, team []string, text string) error {
	key := TeamKey(team)
	c := Commentary{Team: slices.Clone(team), Text: text, CreatedAt: s.now()}
	s.remember(key, c)

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal commentary: %w", err)
	}
	if err := s.redis.Set(ctx, s.prefix+key, string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to cache commentary: %w", err)
	}
	return nil
}

func (s *CommentaryStore) remember(key string, c Commentary) {
	s.mu.Lock()
	s.entries[key] = memEntry{c: c, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

// forget drops key unless it was refreshed after expires was read.
func (s *CommentaryStore) forget(key string, expires time.Time) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && e.expires.Equal(expires) {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}
