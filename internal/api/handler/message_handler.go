package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/api/metrics"
	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// MessageHandler handles HTTP requests for the internal mailbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	RecipientID  string   `json:"recipient_id,omitempty"`
	Subject      string   `json:"subject" validate:"required"`
	Body         string   `json:"body"    validate:"required"`
	Announcement bool     `json:"is_announcement"`
	TargetRoles  []string `json:"target_roles,omitempty" validate:"dive,oneof=admin trainer parent"`
}

type messageListResponse struct {
	Items []*domain.Message `json:"items"`
	Total int               `json:"total"`
}

// Send stores a direct message or an announcement.
//
// @Summary      Send a message or announcement
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	sender, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	// Only trainers and admins may broadcast.
	if req.Announcement && !domain.HasPermission(sender.Role, domain.RoleTrainer) {
		return echo.NewHTTPError(http.StatusForbidden, "only trainers and admins may send announcements")
	}

	roles := make([]domain.Role, 0, len(req.TargetRoles))
	for _, r := range req.TargetRoles {
		roles = append(roles, domain.Role(r))
	}

	msg, err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		SenderID:    sender.ID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
		Announce:    req.Announcement,
		TargetRoles: roles,
	})
	if err != nil {
		return err
	}

	kind := "direct"
	if msg.IsAnnouncement {
		kind = "announcement"
	}
	metrics.MessagesSentTotal.WithLabelValues(kind).Inc()
	return c.JSON(http.StatusCreated, msg)
}

// List returns the viewer's inbox, newest first. The optional q parameter
// filters by a case-insensitive subject/body substring.
//
// @Summary      List visible messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Subject/body search"
// @Success      200  {object}  messageListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}

	messages, err := h.service.Inbox(c.Request().Context(), viewer.ID, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageListResponse{Items: messages, Total: len(messages)})
}

// Unread returns the viewer's unread messages.
//
// @Summary      List unread messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/messages/unread [get]
func (h *MessageHandler) Unread(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}

	messages, err := h.service.Unread(c.Request().Context(), viewer.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageListResponse{Items: messages, Total: len(messages)})
}

// Get returns a single visible message.
//
// @Summary      Get a message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Message id"
// @Success      200  {object}  domain.Message
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	msg, err := h.service.Get(c.Request().Context(), viewer.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// MarkRead stamps the read timestamp. Re-marking an already-read message is
// a no-op success.
//
// @Summary      Mark a message read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Message id"
// @Success      200  {object}  domain.Message
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}

	msg, stamped, err := h.service.MarkRead(c.Request().Context(), viewer.ID, c.Param("id"))
	if err != nil {
		return err
	}
	if stamped {
		metrics.MessagesReadTotal.Inc()
	}
	return c.JSON(http.StatusOK, msg)
}

// Delete removes a message the viewer sent (admins may delete any).
//
// @Summary      Delete a message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), viewer.ID, viewer.Role, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
