package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"advocacia-backend/internal/model"
	"advocacia-backend/pkg/logger"
)

// MemoryStore is the in-process Store used by tests and by deployments
// that do not want history to survive restarts.
type MemoryStore struct {
	petitions []model.SavedPetition
	posts     []model.SavedPost
	queries   []model.SavedQuery
	mu        sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Init() error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) AddPetition(title, content string) (*model.SavedPetition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record := model.SavedPetition{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		SavedAt: time.Now(),
	}
	m.petitions = append([]model.SavedPetition{record}, m.petitions...)
	return &record, nil
}

func (m *MemoryStore) GetAllPetitions() ([]model.SavedPetition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.SavedPetition, len(m.petitions))
	copy(out, m.petitions)
	return out, nil
}

func (m *MemoryStore) UpdatePetition(id string, title, content *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.petitions {
		if m.petitions[i].ID != id {
			continue
		}
		if title != nil {
			m.petitions[i].Title = *title
		}
		if content != nil {
			m.petitions[i].Content = *content
		}
		return nil
	}

	logger.Warnf("Petition with id %s not found for update", id)
	return nil
}

func (m *MemoryStore) DeletePetition(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.petitions = deleteByID(m.petitions, id, func(r model.SavedPetition) string { return r.ID })
	return nil
}

func (m *MemoryStore) AddPost(post model.PostResult) (*model.SavedPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record := model.SavedPost{
		ID:      uuid.NewString(),
		SavedAt: time.Now(),
		Post:    post,
	}
	m.posts = append([]model.SavedPost{record}, m.posts...)
	return &record, nil
}

func (m *MemoryStore) GetAllPosts() ([]model.SavedPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.SavedPost, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *MemoryStore) UpdatePost(id string, post *model.PostResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.posts {
		if m.posts[i].ID != id {
			continue
		}
		if post != nil {
			m.posts[i].Post = *post
		}
		return nil
	}

	logger.Warnf("Post with id %s not found for update", id)
	return nil
}

func (m *MemoryStore) DeletePost(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts = deleteByID(m.posts, id, func(r model.SavedPost) string { return r.ID })
	return nil
}

func (m *MemoryStore) AddQuery(title, content string) (*model.SavedQuery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record := model.SavedQuery{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		SavedAt: time.Now(),
	}
	m.queries = append([]model.SavedQuery{record}, m.queries...)
	return &record, nil
}

func (m *MemoryStore) GetAllQueries() ([]model.SavedQuery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.SavedQuery, len(m.queries))
	copy(out, m.queries)
	return out, nil
}

func (m *MemoryStore) UpdateQuery(id string, title, content *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.queries {
		if m.queries[i].ID != id {
			continue
		}
		if title != nil {
			m.queries[i].Title = *title
		}
		if content != nil {
			m.queries[i].Content = *content
		}
		return nil
	}

	logger.Warnf("Query with id %s not found for update", id)
	return nil
}

func (m *MemoryStore) DeleteQuery(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queries = deleteByID(m.queries, id, func(r model.SavedQuery) string { return r.ID })
	return nil
}
