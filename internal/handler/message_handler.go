package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/service"
)

// MessageHandler handles event message endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a message post.
type SendMessageRequest struct {
	Username string `json:"username" validate:"required"`
	EventID  uint   `json:"eventId" validate:"min=1"`
	Message  string `json:"message" validate:"required"`
}

// SendMessage godoc
// @Summary Send a message to an event
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message data"
// @Success 200 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /send-message [post]
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.SendMessage(c.Request().Context(), req.Username, req.EventID, req.Message)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, message)
}

// ListEventMessages godoc
// @Summary List an event's messages, newest first
// @Tags messages
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} model.Message
// @Failure 500 {object} errors.ErrorResponse
// @Router /event-messages/{eventId} [get]
func (h *MessageHandler) ListEventMessages(c echo.Context) error {
	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	messages, err := h.messageService.ListEventMessages(c.Request().Context(), eventID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, messages)
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(v), nil
}
