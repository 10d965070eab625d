package store

import (
	"github.com/MKhiriev/go-review-hub/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
// It is the single injection point the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	ItemRepository     ItemRepository
	ReviewRepository   ReviewRepository
	CommentRepository  CommentRepository
	FavoriteRepository FavoriteRepository
}

// NewStorages wires every repository to the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ItemRepository:     NewItemRepository(db, logger),
		ReviewRepository:   NewReviewRepository(db, logger),
		CommentRepository:  NewCommentRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
	}
}
