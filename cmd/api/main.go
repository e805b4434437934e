package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/config"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/logging"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/postgres"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/service"
	httpapi "github.com/njprem/Travel_Booking_APP_BackEnd/internal/transport/http"
)

func main() {
	cfg := config.Load()

	releaseLogs, err := logging.Setup(cfg.LogstashTCPAddr)
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	defer releaseLogs()

	db, err := postgres.New(cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.Migrate(startupCtx, db); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}
	if cfg.SeedSampleData {
		seeded, err := postgres.Seed(startupCtx, db)
		if err != nil {
			log.Fatalf("seed sample data: %v", err)
		}
		if seeded {
			log.Println("Sample destinations, hotels and flights inserted")
		}
	}
	cancelStartup()

	userRepo := postgres.NewUserRepo(db)
	destinationRepo := postgres.NewDestinationRepo(db)
	hotelRepo := postgres.NewHotelRepo(db)
	flightRepo := postgres.NewFlightRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)

	userService := service.NewUserService(userRepo)
	destinationService := service.NewDestinationService(destinationRepo)
	hotelService := service.NewHotelService(hotelRepo)
	flightService := service.NewFlightService(flightRepo)
	bookingService := service.NewBookingService(bookingRepo, hotelRepo, flightRepo)

	e := httpapi.NewRouter(cfg.AllowOrigins)
	api := e.Group("/api")
	httpapi.RegisterUsers(api, userService)
	httpapi.RegisterCatalog(api, destinationService, hotelService, flightService)
	httpapi.RegisterBookings(api, bookingService)
	if cfg.EnableSwagger {
		httpapi.RegisterSwagger(e, cfg.SwaggerSpecPath)
	}

	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	go func() {
		log.Printf("Travel API listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
