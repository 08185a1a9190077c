package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/service"
)

// RoomHandler handles room endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomRequest represents a room creation request.
type CreateRoomRequest struct {
	RoomName string `json:"roomName" validate:"required"`
}

// AssignUserRequest represents a room assignment request.
type AssignUserRequest struct {
	Username string `json:"username" validate:"required"`
	RoomID   uint   `json:"roomId" validate:"min=1"`
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Room data"
// @Success 200 {object} map[string]uint
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-room [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roomID, err := h.roomService.CreateRoom(c.Request().Context(), req.RoomName)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]uint{"roomId": roomID})
}

// AssignUser godoc
// @Summary Assign a user to a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body AssignUserRequest true "Assignment data"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /assign-user [post]
func (h *RoomHandler) AssignUser(c echo.Context) error {
	var req AssignUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.roomService.AssignUser(c.Request().Context(), req.Username, req.RoomID); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "User assigned successfully",
	})
}

// ListRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} model.Room
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.roomService.ListRooms(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rooms)
}

// ListRoomUsers godoc
// @Summary List usernames assigned to a room
// @Tags rooms
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {array} UsernameResponse
// @Router /room-users/{roomId} [get]
func (h *RoomHandler) ListRoomUsers(c echo.Context) error {
	roomID, err := parseUintParam(c, "roomId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	usernames, err := h.roomService.ListRoomUsers(c.Request().Context(), roomID)
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
