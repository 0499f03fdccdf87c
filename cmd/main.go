package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/coursehub/coursehub-server/internal/api/http/cookies"
	"github.com/coursehub/coursehub-server/internal/api/http/handler"
	"github.com/coursehub/coursehub-server/internal/api/http/httpctx"
	"github.com/coursehub/coursehub-server/internal/api/http/middleware"
	"github.com/coursehub/coursehub-server/internal/api/http/router"
	"github.com/coursehub/coursehub-server/internal/config"
	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
	"github.com/coursehub/coursehub-server/internal/repository/postgres"
	"github.com/coursehub/coursehub-server/internal/server"
	"github.com/coursehub/coursehub-server/internal/service"
	storage "github.com/coursehub/coursehub-server/internal/storage/minio"
	"github.com/coursehub/coursehub-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	videoRepo := postgres.NewVideoRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)

	tokenManager := token.NewJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTTL,
		cfg.JWT.RefreshTTL,
	)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	tokenService := service.NewTokenService(tokenManager, userRepo, logger)
	authService := service.NewAuth(userRepo, storageClient, tokenService, logger)
	courseService := service.NewCourse(videoRepo, userRepo, storageClient, logger)
	communityService := service.NewCommunity(commentRepo, feedbackRepo, userRepo, logger)
	directoryService := service.NewDirectory(userRepo, courseService, logger)

	ctxMgr := httpctx.NewManager()
	cookieMgr := cookies.NewManager(cfg.Cookie.Secure, cfg.Cookie.Domain)

	rt := router.New(
		handler.NewAuth(authService, tokenService, ctxMgr, cookieMgr, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, logger),
		handler.NewCourse(courseService, ctxMgr, logger),
		handler.NewCommunity(communityService, ctxMgr, logger),
		handler.NewDirectory(directoryService, logger),
		middleware.NewAuthenticate(tokenService, userRepo, ctxMgr, logger),
		middleware.NewLogging(logger),
		logger,
	)

	httpServer := server.NewHTTPServer(rt.Handler(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
