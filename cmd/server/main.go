package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/availability"
	"github.com/laqshya/sports-facility-booking/internal/config"
	"github.com/laqshya/sports-facility-booking/internal/handler"
	"github.com/laqshya/sports-facility-booking/internal/queue"
	"github.com/laqshya/sports-facility-booking/internal/repository"
	"github.com/laqshya/sports-facility-booking/internal/router"
	"github.com/laqshya/sports-facility-booking/internal/wizard"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; sessions held in process memory, response cache disabled")
	}

	identity, err := repository.NewIdentityRepo(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("seed identity store: %v", err)
	}
	ledger := repository.NewLedgerRepo()
	catalog := repository.NewCatalogRepo()
	sessions := repository.NewSessionRepo(rdb, cfg.SessionTTL)

	classifier := availability.NewClassifier(ledger, catalog)
	wizardSvc := wizard.NewService(catalog, classifier)

	authHandler := handler.NewAuthHandler(cfg, identity, sessions)
	publicHandler := handler.NewPublicHandler(catalog, classifier)
	wizardHandler := handler.NewWizardHandler(wizardSvc, ledger)
	bookingHandler := handler.NewBookingHandler(ledger)
	adminHandler := handler.NewAdminHandler(cfg, identity, ledger, catalog)
	managerHandler := handler.NewManagerHandler(catalog, identity)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, publicHandler, rdb, cfg.CacheTTL)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterUser(e, wizardHandler, bookingHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)
	router.RegisterManager(e, managerHandler, cfg.JWTSecret)

	// Background consumer appends confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
