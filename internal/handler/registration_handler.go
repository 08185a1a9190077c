package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/service"
)

// RegistrationHandler handles user<->event registration endpoints. These
// endpoints speak the errorCode envelope the original clients expect rather
// than the standard error shape.
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// RegistrationRequest identifies a (user, event) pair. Ids are serial and
// start at 1; min=1 rejects both absent fields and an explicit zero without
// relying on required's zero-value handling for numbers.
type RegistrationRequest struct {
	UserID  uint `json:"userId" validate:"min=1"`
	EventID uint `json:"eventId" validate:"min=1"`
}

// RegistrationResponse is the errorCode envelope: 0 on success, 1 on failure.
type RegistrationResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// StatusResponse reports whether a user is registered to an event.
type StatusResponse struct {
	IsRegistered bool   `json:"isRegistered"`
	Message      string `json:"message"`
}

// RegisterUserToEvent godoc
// @Summary Register a user to an event
// @Tags registration
// @Accept json
// @Produce json
// @Param request body RegistrationRequest true "User and event ids"
// @Success 200 {object} RegistrationResponse
// @Failure 400 {object} RegistrationResponse
// @Failure 404 {object} RegistrationResponse
// @Failure 500 {object} RegistrationResponse
// @Router /register-user-to-event [post]
func (h *RegistrationHandler) RegisterUserToEvent(c echo.Context) error {
	var req RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, RegistrationResponse{
			ErrorCode: 1,
			Message:   "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, RegistrationResponse{
			ErrorCode: 1,
			Message:   err.Error(),
		})
	}

	err := h.registrationService.RegisterUserToEvent(c.Request().Context(), req.UserID, req.EventID)
	switch err {
	case nil:
		return c.JSON(http.StatusOK, RegistrationResponse{
			ErrorCode: 0,
			Message:   "User registered to event successfully",
		})
	case apperrors.ErrUserNotFound:
		return c.JSON(http.StatusNotFound, RegistrationResponse{
			ErrorCode: 1,
			Message:   "User does not exist",
		})
	case apperrors.ErrAlreadyRegistered:
		return c.JSON(http.StatusBadRequest, RegistrationResponse{
			ErrorCode: 1,
			Message:   "User already registered to event",
		})
	default:
		return c.JSON(http.StatusInternalServerError, RegistrationResponse{
			ErrorCode: 1,
			Message:   "Internal server error",
		})
	}
}

// UnregisterUserFromEvent godoc
// @Summary Unregister a user from an event
// @Tags registration
// @Accept json
// @Produce json
// @Param request body RegistrationRequest true "User and event ids"
// @Success 200 {object} RegistrationResponse
// @Failure 404 {object} RegistrationResponse
// @Failure 500 {object} RegistrationResponse
// @Router /unregister-user-from-event [post]
func (h *RegistrationHandler) UnregisterUserFromEvent(c echo.Context) error {
	var req RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, RegistrationResponse{
			ErrorCode: 1,
			Message:   "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, RegistrationResponse{
			ErrorCode: 1,
			Message:   err.Error(),
		})
	}

	err := h.registrationService.UnregisterUserFromEvent(c.Request().Context(), req.UserID, req.EventID)
	switch err {
	case nil:
		return c.JSON(http.StatusOK, RegistrationResponse{
			ErrorCode: 0,
			Message:   "User unregistered from event successfully",
		})
	case apperrors.ErrNotRegistered:
		return c.JSON(http.StatusNotFound, RegistrationResponse{
			ErrorCode: 1,
			Message:   "User not registered to event",
		})
	default:
		return c.JSON(http.StatusInternalServerError, RegistrationResponse{
			ErrorCode: 1,
			Message:   "Internal server error",
		})
	}
}

// CheckRegistrationStatus godoc
// @Summary Check whether a user is registered to an event
// @Tags registration
// @Produce json
// @Param userId query int true "User ID"
// @Param eventId query int true "Event ID"
// @Success 200 {object} StatusResponse
// @Failure 500 {object} RegistrationResponse
// @Router /check-registration-status [get]
func (h *RegistrationHandler) CheckRegistrationStatus(c echo.Context) error {
	userID, err := strconv.Atoi(c.QueryParam("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, RegistrationResponse{
			ErrorCode: 1,
			Message:   "invalid userId",
		})
	}
	eventID, err := strconv.Atoi(c.QueryParam("eventId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, RegistrationResponse{
			ErrorCode: 1,
			Message:   "invalid eventId",
		})
	}

	registered, err := h.registrationService.CheckRegistrationStatus(c.Request().Context(), uint(userID), uint(eventID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, RegistrationResponse{
			ErrorCode: 1,
			Message:   "Internal server error",
		})
	}

	message := "User is not registered to the event."
	if registered {
		message = "User is registered to the event."
	}
	return c.JSON(http.StatusOK, StatusResponse{
		IsRegistered: registered,
		Message:      message,
	})
}
