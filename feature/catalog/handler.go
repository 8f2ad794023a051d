package catalog

import (
	"errors"

	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog pipeline.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/validation", h.HandleGetValidation)
	group.Post("/sync", h.HandlePostSync)
	group.Get("/runs", h.HandleGetRuns)
}

// HandleGetValidation fetches the current listing and returns its
// validation report without touching the accounting store.
func (h *Handler) HandleGetValidation(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Validate(c.Context())
	if err != nil {
		l.Error("Validation check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandlePostSync triggers a sync pass. Query parameters dry_run, archive
// and skip_validation toggle the pass options.
func (h *Handler) HandlePostSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := SyncOptions{
		DryRun:         c.QueryBool("dry_run"),
		SkipValidation: c.QueryBool("skip_validation"),
		Archive:        c.QueryBool("archive"),
	}

	summary, err := h.service.Sync(c.Context(), opts)
	if errors.Is(err, ErrValidationFailed) {
		l.Warn("Sync halted by validation", zap.String("run_id", summary.RunID))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(summary)
	}
	if err != nil {
		l.Error("Sync pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// HandleGetRuns lists the archived run ids.
func (h *Handler) HandleGetRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.ListRuns(c.Context())
	if err != nil {
		l.Error("Run listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"runs": runs})
}
