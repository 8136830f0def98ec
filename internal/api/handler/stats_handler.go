package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/core/ports"
)

// StatsHandler serves the role-specific dashboard aggregates.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Dashboard returns the business-wide figures. Admin only.
//
// @Summary      Admin dashboard stats
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Trainer returns the authenticated trainer's figures.
//
// @Summary      Trainer dashboard stats
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.TrainerStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/stats/trainer [get]
func (h *StatsHandler) Trainer(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Trainer(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Parent returns the authenticated parent's figures.
//
// @Summary      Parent dashboard stats
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ParentStats
// @Failure      401  {object}  errorResponse
// @Router       /v1/stats/parent [get]
func (h *StatsHandler) Parent(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Parent(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
