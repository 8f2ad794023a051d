package catalog

import (
	"catalog-sync/core/storage"
	"catalog-sync/feature/books"
	"catalog-sync/feature/storefront"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Catalog feature.
func NewFeature(source storefront.Source, store books.Store, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	svc := NewService(source, store, client, bucket, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
