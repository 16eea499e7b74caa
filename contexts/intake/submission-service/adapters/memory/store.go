package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"formdesk/contexts/intake/submission-service/domain/entities"
	"formdesk/contexts/intake/submission-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory repository used by tests and local runs. It also
// serves as Clock and IDGenerator.
type Store struct {
	mu          sync.RWMutex
	submissions map[string]entities.FormSubmission
}

func NewStore(seed []entities.FormSubmission) *Store {
	submissions := make(map[string]entities.FormSubmission, len(seed))
	for _, item := range seed {
		submissions[item.SubmissionID] = item
	}
	return &Store{submissions: submissions}
}

func (s *Store) CreateSubmission(_ context.Context, submission entities.FormSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions[submission.SubmissionID] = submission
	return nil
}

func (s *Store) ListSubmissions(_ context.Context, filter ports.SubmissionFilter) ([]entities.FormSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.FormSubmission, 0, len(s.submissions))
	for _, item := range s.submissions {
		if strings.TrimSpace(filter.OwnerID) != "" && item.UserID != strings.TrimSpace(filter.OwnerID) {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
