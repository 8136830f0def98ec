package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/api/metrics"
	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	DogID               string    `json:"dog_id"       validate:"required"`
	TrainerID           string    `json:"trainer_id"   validate:"required"`
	ParentID            string    `json:"parent_id,omitempty"`
	BookingType         string    `json:"booking_type" validate:"required,oneof=training daycare behavioral socialization"`
	StartTime           time.Time `json:"start_time"   validate:"required"`
	EndTime             time.Time `json:"end_time"     validate:"required"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	Location            string    `json:"location,omitempty"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type bookingListResponse struct {
	Items []*domain.Booking `json:"items"`
	Total int               `json:"total"`
}

// Create schedules a booking. Parents book for their own dogs; staff may
// set parent_id to book on a client's behalf.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	parentID := req.ParentID
	if viewer.Role == domain.RoleParent || parentID == "" {
		parentID = viewer.ID
	}

	booking, err := h.service.Create(c.Request().Context(), viewer, ports.CreateBookingInput{
		DogID:               req.DogID,
		TrainerID:           req.TrainerID,
		ParentID:            parentID,
		BookingType:         domain.BookingType(req.BookingType),
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SpecialInstructions: req.SpecialInstructions,
		Location:            req.Location,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.BookingType)).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// List returns bookings the viewer participates in, newest first. The
// optional status parameter narrows to one lifecycle state.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter"  Enums(pending, confirmed, completed, cancelled)
// @Success      200     {object}  bookingListResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	bookings, err := h.service.List(c.Request().Context(), viewer, domain.BookingStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{Items: bookings, Total: len(bookings)})
}

// Get returns a single booking.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	booking, err := h.service.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// UpdateStatus transitions a booking through its lifecycle. Parents may
// only cancel; confirming and completing is staff work.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Booking id"
// @Param        body  body      updateBookingStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), viewer, c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
