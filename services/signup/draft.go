// File: services/signup/draft.go
package signup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"streamify/models"

	"github.com/go-redis/redis/v8"
)

const DraftKeyPrefix = "signupDraft:"

// DraftStore is the only way wizard logic touches draft persistence. Handlers
// and step operations never reach for storage directly, which keeps the guard
// and finalize paths testable without Redis.
type DraftStore interface {
	// Get returns the draft, or ErrDraftNotFound when absent, expired, or
	// stored under a different schema version.
	Get(ctx context.Context, draftID string) (*models.SignupDraft, error)
	// Save writes the draft, refreshing its TTL and LastUpdatedAt.
	Save(ctx context.Context, draft *models.SignupDraft) error
	// Delete removes the draft. Deleting an absent draft is not an error.
	Delete(ctx context.Context, draftID string) error
}

// RedisDraftStore persists drafts as JSON in Redis with a TTL.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisDraftStore creates a draft store over the given client. A zero TTL
// defaults to 30 minutes.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisDraftStore{Client: client, TTL: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, draftID string) (*models.SignupDraft, error) {
	data, err := s.Client.Get(ctx, DraftKeyPrefix+draftID).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch signup draft: %w", err)
	}
	var draft models.SignupDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signup draft: %w", err)
	}
	if draft.SchemaVersion != models.SignupDraftSchemaVersion {
		// A draft written by a different build is unreadable on purpose: the
		// wizard restarts rather than trusting a partially-upgraded shape.
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.SignupDraft) error {
	draft.SchemaVersion = models.SignupDraftSchemaVersion
	draft.LastUpdatedAt = time.Now()
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal signup draft: %w", err)
	}
	if err := s.Client.Set(ctx, DraftKeyPrefix+draft.DraftID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save signup draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, draftID string) error {
	return s.Client.Del(ctx, DraftKeyPrefix+draftID).Err()
}
