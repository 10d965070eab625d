package service

import (
	"github.com/MKhiriev/go-review-hub/internal/config"
	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/store"
)

type Services struct {
	AuthService     AuthService
	CatalogService  CatalogService
	ReviewService   ReviewService
	CommentService  CommentService
	FavoriteService FavoriteService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		CatalogService:  NewCatalogService(storages.ItemRepository, logger),
		ReviewService:   NewReviewService(storages.ReviewRepository, logger),
		CommentService:  NewCommentService(storages.CommentRepository, logger),
		FavoriteService: NewFavoriteService(storages.FavoriteRepository, logger),
	}
}
