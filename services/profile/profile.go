// File: services/profile/profile.go
package profile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"streamify/models"

	"github.com/go-redis/redis/v8"
)

const viewerProfilePrefix = "viewerProfile:"

// Service serves the "who's watching" and profile-management screens.
// Profiles are display-only: the sample set is held in memory per account,
// and selecting one records the id against the viewer session without
// anything reading it back.
type Service interface {
	List(userID string) []models.Profile
	Get(userID, profileID string) (*models.Profile, error)
	Update(userID string, p models.Profile) (*models.Profile, error)
	Select(ctx context.Context, userID, profileID string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Sessions *redis.Client

	mu       sync.Mutex
	profiles map[string][]models.Profile // userID -> edited sample set
}

func NewDefaultService(sessions *redis.Client) *DefaultService {
	return &DefaultService{
		Sessions: sessions,
		profiles: make(map[string][]models.Profile),
	}
}

func (s *DefaultService) forUser(userID string) []models.Profile {
	if ps, ok := s.profiles[userID]; ok {
		return ps
	}
	ps := models.SampleProfiles()
	s.profiles[userID] = ps
	return ps
}

// List returns the account's profiles.
func (s *DefaultService) List(userID string) []models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := s.forUser(userID)
	out := make([]models.Profile, len(ps))
	copy(out, ps)
	return out
}

// Get returns one profile.
func (s *DefaultService) Get(userID, profileID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.forUser(userID) {
		if p.ID == profileID {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("profile %s not found", profileID)
}

// Update edits a profile's display fields (name, avatar, maturity rating).
func (s *DefaultService) Update(userID string, in models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := s.forUser(userID)
	for i := range ps {
		if ps[i].ID != in.ID {
			continue
		}
		if in.Name != "" {
			ps[i].Name = in.Name
		}
		if in.AvatarColor != "" {
			ps[i].AvatarColor = in.AvatarColor
		}
		if in.MaturityRating != "" {
			ps[i].MaturityRating = in.MaturityRating
		}
		out := ps[i]
		return &out, nil
	}
	return nil, fmt.Errorf("profile %s not found", in.ID)
}

// Select records the chosen profile id against the viewer session. The slot
// is write-only today; it exists so the selection survives navigation.
func (s *DefaultService) Select(ctx context.Context, userID, profileID string) error {
	if _, err := s.Get(userID, profileID); err != nil {
		return err
	}
	if s.Sessions == nil {
		return nil
	}
	key := viewerProfilePrefix + userID
	if err := s.Sessions.Set(ctx, key, profileID, 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to store profile selection: %w", err)
	}
	return nil
}
