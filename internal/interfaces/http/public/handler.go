package public

import (
	"log"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/omise-ai/omise-ai-services/api/internal/public/application"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

// Handler wires public HTTP endpoints to the simulation engine.
type Handler struct {
	logger      *log.Logger
	simulations publicapp.SimulationService
	catalogs    *reference.Store
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Simulations publicapp.SimulationService
	Catalogs    *reference.Store
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		simulations: cfg.Simulations,
		catalogs:    cfg.Catalogs,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/simulate", h.simulateHandler())
	r.Get("/api/genres", h.genreListHandler())
	r.Get("/api/locations", h.locationListHandler())
}
