package storage

import (
	"advocacia-backend/internal/model"
)

// Store persists the three independent history collections: petitions,
// posts and complex queries. Listings come back most-recent-first. Updates
// on a missing id are a logged no-op; deletes remove exactly one record
// and leave the order of the others unchanged.
type Store interface {
	AddPetition(title, content string) (*model.SavedPetition, error)
	GetAllPetitions() ([]model.SavedPetition, error)
	UpdatePetition(id string, title, content *string) error
	DeletePetition(id string) error

	AddPost(post model.PostResult) (*model.SavedPost, error)
	GetAllPosts() ([]model.SavedPost, error)
	UpdatePost(id string, post *model.PostResult) error
	DeletePost(id string) error

	AddQuery(title, content string) (*model.SavedQuery, error)
	GetAllQueries() ([]model.SavedQuery, error)
	UpdateQuery(id string, title, content *string) error
	DeleteQuery(id string) error

	Init() error
	Close() error
}
