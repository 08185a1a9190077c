package main

import (
	"log"
	"net/http"

	_ "eventhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eventhub/internal/auth"
	"eventhub/internal/cache"
	"eventhub/internal/config"
	"eventhub/internal/db"
	"eventhub/internal/handler"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	"eventhub/internal/router"
	"eventhub/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// The user table is owned by the user service; only the room service's
	// own tables are migrated here. Membership rows reference users without
	// a foreign key, so existence checks happen in the service layer.
	if err := gormDB.AutoMigrate(
		&model.Room{},
		&model.Event{},
		&model.EventMembership{},
		&model.RoomMembership{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	roomRepo := repository.NewRoomRepository(gormDB)
	membershipRepo := repository.NewMembershipRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	eventService := service.NewEventService(eventRepo, cacheClient)
	registrationService := service.NewRegistrationService(userRepo, membershipRepo)
	roomService := service.NewRoomService(roomRepo, userRepo, membershipRepo)

	eventHandler := handler.NewEventHandler(eventService, registrationService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	roomHandler := handler.NewRoomHandler(roomService)

	router.RegisterRoomRoutes(e, jwtService, eventHandler, registrationHandler, roomHandler)

	addr := ":" + cfg.RoomServicePort
	log.Printf("Room service running on port %s", cfg.RoomServicePort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
