package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

type createInvoiceRequest struct {
	ParentID    string    `json:"parent_id"    validate:"required"`
	BookingID   string    `json:"booking_id,omitempty"`
	AmountCents int64     `json:"amount_cents" validate:"required,gt=0"`
	DueDate     time.Time `json:"due_date"     validate:"required"`
	Description string    `json:"description,omitempty"`
}

type updateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid overdue cancelled"`
}

type invoiceListResponse struct {
	Items []*domain.Invoice `json:"items"`
	Total int               `json:"total"`
}

// Issue creates an invoice against a parent account. Staff only.
//
// @Summary      Issue an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Issue(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	invoice, err := h.service.Issue(c.Request().Context(), ports.CreateInvoiceInput{
		ParentID:    req.ParentID,
		BookingID:   req.BookingID,
		AmountCents: req.AmountCents,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, invoice)
}

// List returns invoices visible to the viewer, newest first. Parents see
// only their own.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter"  Enums(pending, paid, overdue, cancelled)
// @Success      200     {object}  invoiceListResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	invoices, err := h.service.List(c.Request().Context(), viewer, domain.InvoiceStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoiceListResponse{Items: invoices, Total: len(invoices)})
}

// Get returns a single invoice.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Invoice id"
// @Success      200  {object}  domain.Invoice
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	invoice, err := h.service.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// UpdateStatus moves an invoice through its lifecycle. Staff only; marking
// paid stamps the payment timestamp.
//
// @Summary      Update invoice status
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Invoice id"
// @Param        body  body      updateInvoiceStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Invoice
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateInvoiceStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	invoice, err := h.service.UpdateStatus(c.Request().Context(), viewer, c.Param("id"), domain.InvoiceStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}
