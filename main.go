package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/configs"
	"github.com/yunus-I/Hotel-App/middlewares"
	"github.com/yunus-I/Hotel-App/pkg/logging"
	"github.com/yunus-I/Hotel-App/pkg/messenger"
	"github.com/yunus-I/Hotel-App/pkg/orders"
	"github.com/yunus-I/Hotel-App/pkg/shutdown"
	"github.com/yunus-I/Hotel-App/repository"
	"github.com/yunus-I/Hotel-App/routes"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/ws"
)

func main() {
	cfg := configs.LoadConfig()
	log := logging.New()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if cfg.SeedDemo {
		if err := configs.SeedDemoHotel(); err != nil {
			log.Error("seed demo hotel failed", "error", err)
			os.Exit(1)
		}
	}

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	serviceRepo := repository.NewServiceRequestRepository(db)

	// One-shot import of a cart saved by the old portal build.
	if cfg.LegacyCartImport != "" {
		raw, err := os.ReadFile(cfg.LegacyCartImport)
		if err != nil {
			log.Warn("legacy cart file unreadable, skipping", "path", cfg.LegacyCartImport, "error", err)
		} else if err := cartRepo.ImportLegacy(raw, log); err != nil {
			log.Error("legacy cart import failed", "error", err)
			os.Exit(1)
		}
	}

	// Host messaging: Telegram when configured, local stand-in otherwise.
	confirms := messenger.NewConfirmRegistry()
	var msgr messenger.Messenger
	if cfg.TelegramBotToken != "" && cfg.TelegramStaffChatID != "" {
		msgr = messenger.NewTelegram(cfg.TelegramBotToken, cfg.TelegramStaffChatID, confirms, log)
	} else {
		log.Info("no Telegram config, running in local messaging mode")
		msgr = messenger.NewLocal(confirms, log)
	}

	// Remote order store
	var store orders.Client
	if cfg.OrdersAPIURL != "" {
		store = orders.NewHTTPClient(cfg.OrdersAPIURL, cfg.OrdersAPISecret, log)
	} else {
		log.Info("no order store config, submissions will be reported as failed")
		store = orders.Disabled{}
	}

	// Change-event hub
	hub := ws.NewCartHub(log)
	go hub.Run()

	// Services
	cartSvc := services.NewCartService(db, cartRepo, hub, hub, log)
	checkoutSvc := services.NewCheckoutService(db, cartSvc, orderRepo, store, msgr, confirms, hub, log, cfg.TaxRate, cfg.StrictSubmit)
	hotelSvc := services.NewHotelService(hotelRepo)
	menuSvc := services.NewMenuService(menuRepo)
	serviceSvc := services.NewServiceRequestService(db, serviceRepo, msgr, hub, log)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, &routes.Deps{
		Hotel:      hotelSvc,
		Menu:       menuSvc,
		Carts:      cartSvc,
		Checkout:   checkoutSvc,
		ServiceReq: serviceSvc,
		Hub:        hub,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
