package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"locker-booking/config"
	"locker-booking/controllers"
	"locker-booking/logger"
	"locker-booking/middleware"
	"locker-booking/routes"
	"locker-booking/services"
	"locker-booking/store"
)

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)
	log.Info("starting locker-booking", slog.String("env", cfg.Env), slog.String("db_driver", cfg.Database.Driver))

	if cfg.Env == logger.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg.Database, log)
	if err != nil {
		log.Error("database connect failed", logger.Err(err))
		os.Exit(1)
	}
	log.Info("database connection established and migrations applied")

	st := store.NewGorm(db)

	ctl := routes.Controllers{
		Users:           controllers.NewUserController(services.NewUserService(st), log),
		Bookings:        controllers.NewBookingController(services.NewBookingService(st), log),
		Lockers:         controllers.NewLockerController(services.NewLockerService(st), log),
		Orders:          controllers.NewOrderController(services.NewOrderService(st), log),
		Categories:      controllers.NewCategoryController(services.NewCategoryService(st), log),
		Products:        controllers.NewProductController(services.NewProductService(st), log),
		OrderedProducts: controllers.NewOrderedProductController(services.NewOrderedProductService(st), log),
	}

	userLimiter := middleware.NewRateLimiter(cfg.UserLimit.Limit, cfg.UserLimit.Window)
	defer userLimiter.Stop()

	router := routes.SetupRouter(ctl, cfg.CORSOrigins, userLimiter, log)

	addr := ":" + cfg.HTTPServer.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTPServer.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTPServer.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTPServer.WriteTimeout,
		IdleTimeout:       cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen failed", logger.Err(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", logger.Err(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("server stopped gracefully")
}
