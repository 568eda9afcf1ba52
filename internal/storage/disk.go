package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"advocacia-backend/internal/model"
	"advocacia-backend/pkg/logger"
)

const (
	petitionsFile = "petitions.json"
	postsFile     = "posts.json"
	queriesFile   = "queries.json"
)

// DiskStore keeps each history collection in one JSON array file. Every
// operation is a full read-modify-write under a process-wide lock; writes
// go through a temp file and rename so a crash never leaves a half-written
// array. Two processes sharing a data dir still race (last write wins),
// which matches the contract of the browser storage this replaced.
type DiskStore struct {
	dataDir string
	mu      sync.Mutex
}

func NewDiskStore(dataDir string) *DiskStore {
	return &DiskStore{dataDir: dataDir}
}

func (d *DiskStore) Init() error {
	if err := os.MkdirAll(d.dataDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageInit, err)
	}
	logger.Info("Disk history storage initialized")
	return nil
}

func (d *DiskStore) Close() error {
	return nil
}

// readList loads a collection file. A missing file or corrupted JSON is
// treated as an empty list rather than a fatal error.
func readList[T any](d *DiskStore, file string) []T {
	path := filepath.Join(d.dataDir, file)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Errorf("Failed to read %s: %v", file, err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Errorf("Corrupted history file %s, treating as empty: %v", file, err)
		return []T{}
	}

	return records
}

func writeList[T any](d *DiskStore, file string, records []T) error {
	path := filepath.Join(d.dataDir, file)
	tempPath := path + ".tmp"

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrFileOperation, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("%w: %v", ErrFileOperation, err)
	}

	return nil
}

func (d *DiskStore) AddPetition(title, content string) (*model.SavedPetition, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record := model.SavedPetition{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		SavedAt: time.Now(),
	}

	records := readList[model.SavedPetition](d, petitionsFile)
	records = append([]model.SavedPetition{record}, records...)
	if err := writeList(d, petitionsFile, records); err != nil {
		return nil, err
	}

	return &record, nil
}

func (d *DiskStore) GetAllPetitions() ([]model.SavedPetition, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return readList[model.SavedPetition](d, petitionsFile), nil
}

func (d *DiskStore) UpdatePetition(id string, title, content *string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records := readList[model.SavedPetition](d, petitionsFile)
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if title != nil {
			records[i].Title = *title
		}
		if content != nil {
			records[i].Content = *content
		}
		return writeList(d, petitionsFile, records)
	}

	logger.Warnf("Petition with id %s not found for update", id)
	return nil
}

func (d *DiskStore) DeletePetition(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records := readList[model.SavedPetition](d, petitionsFile)
	return writeList(d, petitionsFile, deleteByID(records, id, func(r model.SavedPetition) string { return r.ID }))
}

func (d *DiskStore) AddPost(post model.PostResult) (*model.SavedPost, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record := model.SavedPost{
		ID:      uuid.NewString(),
		SavedAt: time.Now(),
		Post:    post,
	}

	records := readList[model.SavedPost](d, postsFile)
	records = append([]model.SavedPost{record}, records...)
	if err := writeList(d, postsFile, records); err != nil {
		return nil, err
	}

	return &record, nil
}

func (d *DiskStore) GetAllPosts() ([]model.SavedPost, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return readList[model.SavedPost](d, postsFile), nil
}

func (d *DiskStore) UpdatePost(id string, post *model.PostResult) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records := readList[model.SavedPost](d, postsFile)
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if post != nil {
			records[i].Post = *post
		}
		return writeList(d, postsFile, records)
	}

	logger.Warnf("Post with id %s not found for update", id)
	return nil
}

func (d *DiskStore) DeletePost(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records := readList[model.SavedPost](d, postsFile)
	return writeList(d, postsFile, deleteByID(records, id, func(r model.SavedPost) string { return r.ID }))
}

func (d *DiskStore) AddQuery(title, content string) (*model.SavedQuery, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record := model.SavedQuery{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		SavedAt: time.Now(),
	}

	records := readList[model.SavedQuery](d, queriesFile)
	records = append([]model.SavedQuery{record}, records...)
	if err := writeList(d, queriesFile, records); err != nil {
		return nil, err
	}

	return &record, nil
}

func (d *DiskStore) GetAllQueries() ([]model.SavedQuery, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return readList[model.SavedQuery](d, queriesFile), nil
}

func (d *DiskStore) UpdateQuery(id string, title, content *string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records := readList[model.SavedQuery](d, queriesFile)
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if title != nil {
			records[i].Title = *title
		}
		if content != nil {
			records[i].Content = *content
		}
		return writeList(d, queriesFile, records)
	}

	logger.Warnf("Query with id %s not found for update", id)
	return nil
}

func (d *DiskStore) DeleteQuery(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records := readList[model.SavedQuery](d, queriesFile)
	return writeList(d, queriesFile, deleteByID(records, id, func(r model.SavedQuery) string { return r.ID }))
}

func deleteByID[T any](records []T, id string, idOf func(T) string) []T {
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if idOf(r) == id {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
