package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// TrainingSessionHandler handles HTTP requests for recorded training sessions.
type TrainingSessionHandler struct {
	service ports.TrainingSessionService
}

func NewTrainingSessionHandler(service ports.TrainingSessionService) *TrainingSessionHandler {
	return &TrainingSessionHandler{service: service}
}

type recordSessionRequest struct {
	BookingID      string   `json:"booking_id" validate:"required"`
	Attended       bool     `json:"attended"`
	Notes          string   `json:"notes,omitempty"`
	ProgressRating int      `json:"progress_rating" validate:"gte=0,lte=5"`
	BehaviorRating int      `json:"behavior_rating" validate:"gte=0,lte=5"`
	Photos         []string `json:"photos,omitempty"`
}

type sessionListResponse struct {
	Items []*domain.TrainingSession `json:"items"`
	Total int                       `json:"total"`
}

// Record stores the outcome of a booked session. Only the booking's trainer
// or an admin may record against it.
//
// @Summary      Record a training session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordSessionRequest  true  "Session outcome"
// @Success      201   {object}  domain.TrainingSession
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/sessions [post]
func (h *TrainingSessionHandler) Record(c echo.Context) error {
	trainer, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req recordSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	session, err := h.service.Record(c.Request().Context(), trainer, ports.RecordSessionInput{
		BookingID:      req.BookingID,
		Attended:       req.Attended,
		Notes:          req.Notes,
		ProgressRating: req.ProgressRating,
		BehaviorRating: req.BehaviorRating,
		Photos:         req.Photos,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

// List returns the session records the viewer is involved in, newest first.
//
// @Summary      List training sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/sessions [get]
func (h *TrainingSessionHandler) List(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	sessions, err := h.service.List(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionListResponse{Items: sessions, Total: len(sessions)})
}

// Get returns a single session record.
//
// @Summary      Get a training session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Session id"
// @Success      200  {object}  domain.TrainingSession
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/sessions/{id} [get]
func (h *TrainingSessionHandler) Get(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	session, err := h.service.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}
