// File: services/agent/draftStore.go
package agent

import (
	"context"
	"encoding/json"
	"time"

	"tailortalk/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "agent:draft:"

// DraftStore holds the pending booking draft for a session while the user
// decides whether to confirm. A draft exists only between a
// requires-confirmation response and the matching booking (or TTL expiry).
type DraftStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingData, error)
	Set(ctx context.Context, sessionID string, draft *models.BookingData) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, sessionID string) (*models.BookingData, error) {
	key := draftKeyPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft models.BookingData
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisDraftStore) Set(ctx context.Context, sessionID string, draft *models.BookingData) error {
	key := draftKeyPrefix + sessionID
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	key := draftKeyPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
