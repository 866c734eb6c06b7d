package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cartrack/internal/blob"
	"cartrack/internal/config"
	"cartrack/internal/core"
	"cartrack/internal/db"
	"cartrack/internal/http/handler"
	"cartrack/internal/http/handler/middleware"
	"cartrack/internal/http/payload"
	"cartrack/internal/http/server"
	"cartrack/internal/notify"
	"cartrack/internal/repository"
	"cartrack/internal/session"
	"cartrack/pkg/log"
	"cartrack/pkg/token"

	"go.uber.org/zap/zapcore"
)

const sessionSweepInterval = 5 * time.Minute

func Start() error {
	logger := log.NewZapLogger("cartrack", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTrackingRepository(dbConn)

	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// session & token services
	tokenService := token.NewService([]byte(config.SessionSecret))
	sessionStore := session.NewMemoryStore(sessionSweepInterval)
	defer sessionStore.Close()

	// blob store
	blobStore, err := blob.NewDiskStore(config.UploadDir)
	if err != nil {
		logger.Errorw("failed to create blob store", "error", err)
		return err
	}

	notifier := notify.NewSMTPSender(config.SMTPAddr, config.SMTPFrom, logger)

	// tracker core
	tracker := core.NewTracker(
		logger,
		repo,
		blobStore,
		sessionStore,
		tokenService,
		notifier,
		config.SessionTTL)

	// handlers
	validator := payload.DecodeValidator{}
	authHlr := handler.NewAuthHandler(logger, validator, tracker, config.SessionTTL)
	userHlr := handler.NewUserHandler(logger, validator, tracker)
	vehicleHlr := handler.NewVehicleHandler(logger, validator, tracker)
	configHlr := handler.NewConfigHandler(logger, validator, tracker)
	fileHlr := handler.NewFileHandler(logger, blobStore)

	// middleware
	auth := middleware.NewAuthMiddleware(logger, tracker)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Login, authHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, authHlr.HandleLogout)
	mux.HandleFunc(handler.Me, auth.RequireAuth(authHlr.HandleMe))

	mux.HandleFunc(handler.ListUsers, auth.RequireAuth(userHlr.HandleList))
	mux.HandleFunc(handler.GetUser, auth.RequireAuth(userHlr.HandleGet))
	mux.HandleFunc(handler.CreateUser, auth.RequireAdmin(userHlr.HandleCreate))
	mux.HandleFunc(handler.UpdateUser, auth.RequireAdmin(userHlr.HandleUpdate))
	mux.HandleFunc(handler.DeleteUser, auth.RequireAdmin(userHlr.HandleDelete))
	mux.HandleFunc(handler.UploadProfilePicture, auth.RequireAuth(userHlr.HandleUploadProfilePicture))

	mux.HandleFunc(handler.ListVehicles, auth.RequireAuth(vehicleHlr.HandleList))
	mux.HandleFunc(handler.GetVehicle, auth.RequireAuth(vehicleHlr.HandleGet))
	mux.HandleFunc(handler.CreateVehicle, auth.RequireAdmin(vehicleHlr.HandleCreate))
	mux.HandleFunc(handler.UpdateVehicle, auth.RequireAdmin(vehicleHlr.HandleUpdate))
	mux.HandleFunc(handler.DeleteVehicle, auth.RequireAdmin(vehicleHlr.HandleDelete))
	mux.HandleFunc(handler.AttachPhotos, auth.RequireAdmin(vehicleHlr.HandleAttachPhotos))
	mux.HandleFunc(handler.AttachInvoices, auth.RequireAdmin(vehicleHlr.HandleAttachInvoices))
	mux.HandleFunc(handler.RemoveInvoice, auth.RequireAdmin(vehicleHlr.HandleRemoveInvoice))
	mux.HandleFunc(handler.NotifyUpdate, auth.RequireAdmin(vehicleHlr.HandleNotifyUpdate))

	mux.HandleFunc(handler.GetAllConfig, auth.RequireAuth(configHlr.HandleGetAll))
	mux.HandleFunc(handler.GetConfigKey, auth.RequireAuth(configHlr.HandleGet))
	mux.HandleFunc(handler.SetConfigKey, auth.RequireAdmin(configHlr.HandleSet))

	mux.HandleFunc(handler.GetFile, fileHlr.HandleGet)
	mux.HandleFunc(handler.GetFileBase64, fileHlr.HandleGetBase64)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
