package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eventhub/internal/auth"
	"eventhub/internal/handler"
)

// RegisterUserRoutes wires the identity service's routes and middleware.
func RegisterUserRoutes(e *echo.Echo, jwtService *auth.JWTService, authHandler *handler.AuthHandler) {
	useCommon(e)

	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout)
	users.GET("/profile", authHandler.Profile, auth.VerifyToken(jwtService))
}

// RegisterRoomRoutes wires the room/event service's routes and middleware.
// Event management is admin-gated; registration and the read endpoints are
// open, matching the original service.
func RegisterRoomRoutes(
	e *echo.Echo,
	jwtService *auth.JWTService,
	eventHandler *handler.EventHandler,
	registrationHandler *handler.RegistrationHandler,
	roomHandler *handler.RoomHandler,
) {
	useCommon(e)

	api := e.Group("/api")

	admin := api.Group("", auth.VerifyToken(jwtService), auth.RequireAdmin)
	admin.POST("/create-event", eventHandler.CreateEvent)
	admin.PUT("/update-event/:id", eventHandler.UpdateEvent)
	admin.DELETE("/delete-event/:id", eventHandler.DeleteEvent)

	api.GET("/events", eventHandler.ListEvents)
	api.GET("/event-detail/:eventId", eventHandler.GetEventDetail)
	api.GET("/event-users/:eventId", eventHandler.ListEventUsers)

	api.POST("/register-user-to-event", registrationHandler.RegisterUserToEvent)
	api.POST("/unregister-user-from-event", registrationHandler.UnregisterUserFromEvent)
	api.GET("/check-registration-status", registrationHandler.CheckRegistrationStatus)

	api.POST("/create-room", roomHandler.CreateRoom)
	api.GET("/rooms", roomHandler.ListRooms)
	api.GET("/room-users/:roomId", roomHandler.ListRoomUsers)
	api.POST("/assign-user", roomHandler.AssignUser)
}

// RegisterMessageRoutes wires the message service's routes and middleware.
func RegisterMessageRoutes(e *echo.Echo, messageHandler *handler.MessageHandler) {
	useCommon(e)

	e.POST("/send-message", messageHandler.SendMessage)
	e.GET("/event-messages/:eventId", messageHandler.ListEventMessages)
}

func useCommon(e *echo.Echo) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
