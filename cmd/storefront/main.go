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

	"go.uber.org/zap"

	"game_store/internal/api"
	"game_store/internal/app"
	"game_store/internal/config"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
	"game_store/internal/service"
	"game_store/internal/storage"
)

func main() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	const startupTimeout = 30 * time.Second
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	db, err := storage.New(startupCtx, storage.Options{
		Kind:          config.StorageKind,
		Path:          config.StoragePath,
		RedisAddr:     config.RedisAddr,
		RedisPassword: config.RedisPassword,
		DatabaseURI:   config.DatabaseURI,
	}, l)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	client := requester.New(config.APIURL, nil, l)

	session := app.NewSession(api.NewAuthService(client, l), api.NewUserService(client, l), client, db, l)
	stores := service.Stores{
		Session:   session,
		Catalog:   app.NewCatalog(api.NewGameService(client, config.MaxPages, l), session, config.PerPage, l),
		Purchases: app.NewPurchases(api.NewPurchaseService(client, l), session, db, l),
		Comments:  app.NewComments(api.NewCommentService(client, l), session, l),
	}

	stores.Purchases.Load(startupCtx)
	if err := session.Restore(startupCtx); err != nil {
		l.Error("Cannot restore session", zap.Error(err))
	}
	if err := stores.Catalog.RefreshGames(startupCtx); err != nil {
		l.Warn("Starting with an empty catalog", zap.Error(err))
	}
	cancelStartup()

	service := service.NewService(stores, config.ServerRunAddress, l)

	const readHeaderTimeout = 5 * time.Second
	server := &http.Server{Addr: config.ServerRunAddress, Handler: service.NewRouter(), ReadHeaderTimeout: readHeaderTimeout}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		const shutdownTimeout = 30 * time.Second
		shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownTimeout)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		stores.Catalog.Wait()
		serverStopCtx()
	}()

	l.Info("View server listening", zap.String("address", config.ServerRunAddress), zap.String("api", config.APIURL))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}

	<-serverCtx.Done()
}
