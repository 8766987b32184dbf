package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dezh-tech/immortal/pkg/logger"

	"yapback"
	"yapback/config"
	brokerRepository "yapback/internal/domain/repository/broker"
	databaseRepository "yapback/internal/domain/repository/database"
	storageRepository "yapback/internal/domain/repository/storage"
	"yapback/internal/infrastructure/broker"
	"yapback/internal/infrastructure/database"
	"yapback/internal/infrastructure/memory"
	"yapback/internal/infrastructure/minio"
	"yapback/internal/presentation/handler"
	"yapback/internal/presentation/middleware"
)

// HandleRun starts the local dev backend: the three wire endpoints of the
// hosted feedback API, with MinIO/MongoDB/Redis behind them when configured
// and in-memory fallbacks otherwise.
func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running yapback dev backend", "version", yapback.StringVersion())

	publicURL := cfg.DevServer.PublicURL
	if publicURL == "" {
		publicURL = "http://" + cfg.DevServer.Address
	}

	store := memory.NewStore(publicURL)

	var signer storageRepository.SlotSigner = store
	if cfg.MinIOClient.Endpoint != "" {
		minIOClient, err := minio.New(cfg.MinIOClient)
		if err != nil {
			ExitOnError(err)
		}
		signer = minio.NewSigner(minIOClient.MinioClient, cfg.MinIOSigner)
	}

	var writer databaseRepository.Writer = store
	var retriever databaseRepository.Retriever = store
	if cfg.DBConfig.URI != "" {
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer func() {
			if err := db.Stop(); err != nil {
				logger.Error("couldn't stop db instance", "err", err)
			}
		}()
		writer = database.NewFeedbackWriter(db)
		retriever = database.NewFeedbackRetriever(db)
	}

	var publisher brokerRepository.Publisher
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()
		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	}

	uploadURLHandler := handler.NewUploadURLHandler(signer, cfg.Limits)
	storageHandler := handler.NewStorageHandler(store)
	feedbackHandler := handler.NewFeedbackHandler(writer, publisher)
	getFeedbackHandler := handler.NewGetFeedbackHandler(retriever)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(fmt.Sprintf("%dM", cfg.Limits.MaxVideoSize/(1024*1024)+1)))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	auth := middleware.AuthMiddleware(cfg.Client.APIKey)
	e.POST("/api/feedback/upload-url", uploadURLHandler.Handle, auth)
	e.POST("/api/feedback", feedbackHandler.Handle, auth)
	e.GET("/api/feedback/:id", getFeedbackHandler.Handle, auth)
	// Signed URLs carry their own authorization; no bearer check here.
	e.PUT("/storage/*", storageHandler.Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.DevServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}
