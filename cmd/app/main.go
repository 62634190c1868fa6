// @title ShareIt API
// @version 1.0
// @description Item sharing service: users list items, request bookings and leave comments.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "shareit/docs"
	"shareit/internal/booking"
	"shareit/internal/config"
	"shareit/internal/db"
	"shareit/internal/item"
	"shareit/internal/logger"
	"shareit/internal/notify"
	"shareit/internal/request"
	"shareit/internal/server"
	"shareit/internal/user"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	notifySvc := notify.NewService(rdb, cfg)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go notifySvc.Start(workerCtx)

	userRepo := user.NewRepository(database)
	itemRepo := item.NewRepository(database)
	requestRepo := request.NewRepository(database)
	bookingRepo := booking.NewRepository(database)

	projector := booking.NewProjectionBuilder(bookingRepo)
	notifier := notify.NewBookingNotifier(notifySvc, userRepo)

	userSvc := user.NewService(userRepo)
	itemSvc := item.NewService(itemRepo, userRepo, requestRepo, projector)
	requestSvc := request.NewService(requestRepo, userRepo, itemRepo)
	bookingSvc := booking.NewService(bookingRepo, userRepo, itemRepo, notifier)

	srv := server.New(cfg, server.Handlers{
		Users:    user.NewHandler(userSvc),
		Items:    item.NewHandler(itemSvc),
		Requests: request.NewHandler(requestSvc),
		Bookings: booking.NewHandler(bookingSvc),
	})

	go func() {
		logger.Infof("server listening on :%s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("shutdown: %v", err)
	}

	logger.Info("server stopped")
}
