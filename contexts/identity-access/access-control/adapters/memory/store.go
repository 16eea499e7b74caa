package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"formdesk/contexts/identity-access/access-control/domain/entities"
	domainerrors "formdesk/contexts/identity-access/access-control/domain/errors"
	"formdesk/contexts/identity-access/access-control/ports"
	"formdesk/internal/shared/outbox"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type credentialRecord struct {
	UserID       string
	Email        string
	PasswordHash []byte
}

// Store is the in-memory profile store plus a credential directory standing
// in for the external identity provider. It doubles as Clock and IDGenerator.
type Store struct {
	mu          sync.RWMutex
	profiles    map[string]entities.Profile
	credentials map[string]credentialRecord
	audits      []outbox.Message
}

func NewStore(seed []entities.Profile) *Store {
	profiles := make(map[string]entities.Profile, len(seed))
	for _, item := range seed {
		profiles[item.ID] = item
	}
	return &Store{
		profiles:    profiles,
		credentials: make(map[string]credentialRecord),
	}
}

func (s *Store) GetProfile(_ context.Context, userID string) (entities.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.profiles[strings.TrimSpace(userID)]
	if !exists {
		return entities.Profile{}, domainerrors.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Store) ListProfiles(_ context.Context) ([]entities.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Profile, 0, len(s.profiles))
	for _, item := range s.profiles {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) UpdateProfile(_ context.Context, update ports.ProfileUpdate) (entities.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, exists := s.profiles[update.UserID]
	if !exists {
		return entities.Profile{}, domainerrors.ErrUserNotFound
	}
	if update.Role != nil {
		profile.Role = *update.Role
	}
	if update.IsBanned != nil {
		profile.IsBanned = *update.IsBanned
	}
	profile.UpdatedAt = update.UpdatedAt
	s.profiles[update.UserID] = profile
	return profile, nil
}

func (s *Store) SetRole(_ context.Context, userID string, role entities.Role, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, exists := s.profiles[userID]
	if !exists {
		return domainerrors.ErrUserNotFound
	}
	profile.Role = role
	profile.UpdatedAt = now
	s.profiles[userID] = profile
	return nil
}

func (s *Store) ProvisionUser(_ context.Context, email string, password string, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, exists := s.credentials[normalized]; exists {
		return "", domainerrors.ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	userID := uuid.NewString()
	s.credentials[normalized] = credentialRecord{
		UserID:       userID,
		Email:        normalized,
		PasswordHash: hash,
	}
	s.profiles[userID] = entities.Profile{
		ID:        userID,
		Email:     normalized,
		Role:      entities.RoleBasic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return userID, nil
}

func (s *Store) AppendAudit(_ context.Context, message outbox.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audits = append(s.audits, message)
	return nil
}

func (s *Store) ListPendingAudits(_ context.Context, limit int) ([]outbox.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]outbox.Message, 0, limit)
	for _, message := range s.audits {
		if message.Status != outbox.StatusPending {
			continue
		}
		pending = append(pending, message)
		if len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkAuditPublished(_ context.Context, messageID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.audits {
		if s.audits[i].ID == messageID {
			s.audits[i].Status = outbox.StatusPublished
			return nil
		}
	}
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
