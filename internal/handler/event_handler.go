package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/service"
)

// EventHandler handles event catalog endpoints.
type EventHandler struct {
	eventService        service.EventService
	registrationService service.RegistrationService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, registrationService service.RegistrationService) *EventHandler {
	return &EventHandler{
		eventService:        eventService,
		registrationService: registrationService,
	}
}

// EventRequest carries the fields for creating or updating an event.
// All fields are required; partial updates are not supported.
type EventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Thumbnail   string    `json:"thumbnail" validate:"required"`
	Description string    `json:"description" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}

// UsernameResponse is a single username row.
type UsernameResponse struct {
	Username string `json:"username"`
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Event data"
// @Success 200 {object} map[string]uint
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-event [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "All fields (name, thumbnail, description, start_time, end_time) are required.",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "All fields (name, thumbnail, description, start_time, end_time) are required.",
			Code:  "VALIDATION_ERROR",
		})
	}

	eventID, err := h.eventService.CreateEvent(c.Request().Context(), &model.Event{
		Name:        req.Name,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]uint{"eventId": eventID})
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event data"
// @Success 200 {object} map[string]uint
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /update-event/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "All fields (name, thumbnail, description, start_time, end_time) are required.",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "All fields (name, thumbnail, description, start_time, end_time) are required.",
			Code:  "VALIDATION_ERROR",
		})
	}

	event := &model.Event{
		ID:          uint(id),
		Name:        req.Name,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := h.eventService.UpdateEvent(c.Request().Context(), event); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]uint{"eventId": uint(id)})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /delete-event/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), uint(id)); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Event deleted successfully.",
	})
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.eventService.ListEvents(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}

// GetEventDetail godoc
// @Summary Get event details
// @Tags events
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /event-detail/{eventId} [get]
func (h *EventHandler) GetEventDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("eventId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	event, err := h.eventService.GetEvent(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, event)
}

// ListEventUsers godoc
// @Summary List usernames registered to an event
// @Tags events
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} UsernameResponse
// @Router /event-users/{eventId} [get]
func (h *EventHandler) ListEventUsers(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("eventId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	usernames, err := h.registrationService.ListEventUsers(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	rows := make([]UsernameResponse, 0, len(usernames))
	for _, username := range usernames {
		rows = append(rows, UsernameResponse{Username: username})
	}
	return c.JSON(http.StatusOK, rows)
}
