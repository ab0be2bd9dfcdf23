package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devtemiloluwa/translator-app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserStore keeps users in-process. Used by tests and for running the
// server without a database.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
	email map[string]primitive.ObjectID
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[primitive.ObjectID]models.User),
		email: make(map[string]primitive.ObjectID),
	}
}

func (s *MemoryUserStore) Create(_ context.Context, user models.User) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.email[user.Email]; exists {
		return primitive.NilObjectID, ErrEmailTaken
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = user
	s.email[user.Email] = user.ID
	return user.ID, nil
}

func (s *MemoryUserStore) ByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.email[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.users[id], nil
}

func (s *MemoryUserStore) ByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// Count reports how many users exist. Test hook.
func (s *MemoryUserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// MemoryTranslationStore keeps translation history in-process.
type MemoryTranslationStore struct {
	mu      sync.RWMutex
	records []models.Translation
}

func NewMemoryTranslationStore() *MemoryTranslationStore {
	return &MemoryTranslationStore{}
}

func (s *MemoryTranslationStore) Save(_ context.Context, t models.Translation) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	s.records = append(s.records, t)
	return t.ID, nil
}

func (s *MemoryTranslationStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Walk insertion order backwards, then stable-sort on createdAt so that
	// records sharing a timestamp still come out newest-insert first.
	res := make([]models.Translation, 0)
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].UserID == userID {
			res = append(res, s.records[i])
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (s *MemoryTranslationStore) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == id && r.UserID == userID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count reports how many records exist across all users. Test hook.
func (s *MemoryTranslationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
