package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "spg-be/docs"
	"spg-be/internal/api"
	"spg-be/internal/auth"
	"spg-be/internal/category"
	"spg-be/internal/client"
	"spg-be/internal/config"
	"spg-be/internal/db"
	"spg-be/internal/deliverer"
	"spg-be/internal/imagestore"
	"spg-be/internal/logger"
	"spg-be/internal/middleware"
	"spg-be/internal/notify"
	"spg-be/internal/order"
	"spg-be/internal/product"
	"spg-be/internal/provider"
	"spg-be/internal/scheduler"
	"spg-be/internal/user"
	"spg-be/internal/wallet"
	"spg-be/internal/warehouse"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Solidarity Purchase Group API
// @version 1.0
// @description Weekly farm-to-consumer marketplace: declarations, confirmations, orders and fulfilment.
// @BasePath /
func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatal("failed to init DB", zap.Error(err))
	}
	defer database.Close()
	log.Info("database connection established")

	var revoker auth.Revoker = auth.NopRevoker{}
	if cfg.RedisAddr != "" {
		rr, err := auth.NewRedisRevoker(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rr.Close()
		revoker = rr
	} else {
		log.Warn("REDIS_ADDR not set, sessions are not revocable")
	}

	mailer, closeMailer := notify.NewFromConfig(cfg)
	defer func() {
		if err := closeMailer(); err != nil {
			log.Warn("failed to close mailer", zap.Error(err))
		}
	}()

	app, err := newApp(cfg, database, revoker, mailer)
	if err != nil {
		log.Fatal("failed to build application", zap.Error(err))
	}

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	defer limiter.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(cfg.SchedulerInterval, log.Named("scheduler"),
		scheduler.NewWeeklyTick(app.orders, log.Named("weekly")),
	)
	sched.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           app.server.Handler(limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	cancel()
	sched.Stop()
	log.Info("server exited")
}

type app struct {
	server *api.Server
	orders order.Service
}

// newApp wires repositories, services and the HTTP server over an open pool.
func newApp(cfg *config.Config, database *sql.DB, revoker auth.Revoker, mailer notify.Sender) (*app, error) {
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	images, err := imagestore.New(cfg.ImageDir)
	if err != nil {
		return nil, err
	}

	categorySvc := category.NewService(category.NewRepository(database))
	productSvc := product.NewService(product.NewRepository(database), images)
	orderSvc := order.NewService(order.NewRepository(database))
	providerRepo := provider.NewRepository(database)
	providerSvc := provider.NewService(providerRepo, mailer)
	userSvc := user.NewService(user.NewRepository(database), providerRepo)
	clientSvc := client.NewService(client.NewRepository(database))
	walletSvc := wallet.NewService(wallet.NewRepository(database))
	delivererSvc := deliverer.NewService(deliverer.NewRepository(database))
	warehouseSvc := warehouse.NewService(warehouse.NewRepository(database))

	server := api.NewServer(api.Deps{
		Categories:   categorySvc,
		Products:     productSvc,
		Orders:       orderSvc,
		Providers:    providerSvc,
		Users:        userSvc,
		Clients:      clientSvc,
		Wallet:       walletSvc,
		Deliverers:   delivererSvc,
		Warehouse:    warehouseSvc,
		Mailer:       mailer,
		Images:       images,
		Tokens:       tokens,
		Revoker:      revoker,
		CookieSecure: cfg.CookieSecure,
		CORSOrigins:  cfg.CORSOrigins,
	})

	return &app{server: server, orders: orderSvc}, nil
}
