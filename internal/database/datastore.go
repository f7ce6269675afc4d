package database

import "github.com/jmoiron/sqlx"

// DataStore defines the unified interface for all data operations needed by the server.
// Consumers can depend on the smaller repository interfaces instead.
type DataStore interface {
	UserRepository
	BoardRepository
	TaskRepository
	CommentRepository
	ActivityRepository
}

// Repository composes every entity repository over one connection
type Repository struct {
	*UserRepo
	*BoardRepo
	*TaskRepo
	*CommentRepo
	*ActivityRepo
}

// NewRepository creates a Repository backed by db
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		UserRepo:     &UserRepo{db: db},
		BoardRepo:    &BoardRepo{db: db},
		TaskRepo:     &TaskRepo{db: db},
		CommentRepo:  &CommentRepo{db: db},
		ActivityRepo: &ActivityRepo{db: db},
	}
}

var _ DataStore = (*Repository)(nil)
