package signup

import (
	"context"
	"encoding/json"
	"sync"

	"streamify/models"
)

// MemoryDraftStore is a process-local DraftStore used in tests and local
// development when Redis is not available. Drafts round-trip through JSON so
// the stored shape matches what RedisDraftStore would persist.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *MemoryDraftStore) Get(ctx context.Context, draftID string) (*models.SignupDraft, error) {
	s.mu.Lock()
	data, ok := s.drafts[draftID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrDraftNotFound
	}
	var draft models.SignupDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	if draft.SchemaVersion != models.SignupDraftSchemaVersion {
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Save(ctx context.Context, draft *models.SignupDraft) error {
	draft.SchemaVersion = models.SignupDraftSchemaVersion
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts[draft.DraftID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, draftID string) error {
	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()
	return nil
}
