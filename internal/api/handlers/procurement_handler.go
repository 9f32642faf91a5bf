package handlers

import (
	"errors"
	"time"

	"procurement-api/internal/dto"
	"procurement-api/internal/service"
	"procurement-api/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProcurementHandler struct {
	recService *service.RecommendationService
	metrics    metrics.Collector
	logger     *zap.Logger
}

func NewProcurementHandler(recService *service.RecommendationService, collector metrics.Collector, logger *zap.Logger) *ProcurementHandler {
	return &ProcurementHandler{
		recService: recService,
		metrics:    collector,
		logger:     logger,
	}
}

// RecommendProcurement godoc
// @Summary Generate a procurement recommendation
// @Description Searches live supplier listings for the material near the project location, then asks the model for a procurement plan
// @Tags procurement
// @Accept json
// @Produce json
// @Param request body dto.ProcurementRequest true "Procurement request"
// @Success 200 {object} dto.ProcurementResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recommend-procurement [post]
func (h *ProcurementHandler) RecommendProcurement(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.ProcurementRequest
	if err := c.BodyParser(&req); err != nil {
		h.metrics.RecordRequest(c.Context(), "400", time.Since(start).Milliseconds())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		h.metrics.RecordRequest(c.Context(), "422", time.Since(start).Milliseconds())
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.recService.Recommend(c.Context(), *req.MaterialName, *req.Quantity, *req.Location, *req.Budget)
	if err != nil {
		if errors.Is(err, service.ErrNoSuppliers) {
			h.metrics.RecordRequest(c.Context(), "404", time.Since(start).Milliseconds())
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No suppliers found.",
			})
		}

		var upstreamErr *service.UpstreamError
		if errors.As(err, &upstreamErr) {
			h.logger.Error("Upstream provider failed",
				zap.String("provider", upstreamErr.Provider),
				zap.Error(err),
			)
			h.metrics.RecordRequest(c.Context(), "500", time.Since(start).Milliseconds())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Completion failures are not translated here; the app error
		// handler turns them into a plain 500.
		h.logger.Error("Failed to generate recommendation", zap.Error(err))
		h.metrics.RecordRequest(c.Context(), "500", time.Since(start).Milliseconds())
		return err
	}

	h.metrics.RecordRequest(c.Context(), "200", time.Since(start).Milliseconds())
	return c.JSON(resp)
}
