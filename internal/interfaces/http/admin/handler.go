package admin

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"

	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

// CatalogLoader re-reads the reference catalog from its external source.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (*reference.Catalog, error)
}

// Handler wires ops endpoints for the reference catalog.
// Handler はリファレンスカタログの確認・再読込を提供する運用向けハンドラ。
type Handler struct {
	logger   *log.Logger
	catalogs *reference.Store
	loader   CatalogLoader
}

// Config provides dependencies for Handler.
// Loader は Mongo 未構成時に nil になり、その場合 reload は 503 を返す。
type Config struct {
	Logger   *log.Logger
	Catalogs *reference.Store
	Loader   CatalogLoader
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		catalogs: cfg.Catalogs,
		loader:   cfg.Loader,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/reference", h.referenceSummaryHandler())
	r.Post("/reference/reload", h.referenceReloadHandler())
}
