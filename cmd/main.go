package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dtroode/whiskersm-users/internal/api/http/router"
	httpServer "github.com/dtroode/whiskersm-users/internal/api/http/server"
	"github.com/dtroode/whiskersm-users/internal/config"
	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
	"github.com/dtroode/whiskersm-users/internal/notifier"
	"github.com/dtroode/whiskersm-users/internal/repository/memory"
	"github.com/dtroode/whiskersm-users/internal/repository/postgres"
	"github.com/dtroode/whiskersm-users/internal/security"
	"github.com/dtroode/whiskersm-users/internal/server"
	"github.com/dtroode/whiskersm-users/internal/service"
	"github.com/dtroode/whiskersm-users/internal/token"
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

	userStore, closeStore, err := newUserStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer closeStore.Close()

	invitations, err := newNotifier(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize notifier", "error", err)
	}

	hasher := security.NewBcrypt(cfg.Bcrypt.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	userService := service.NewUsers(userStore, hasher, invitations, logger)
	authService := service.NewAuth(userService, hasher, tokenManager, logger)

	app := router.New(userService, authService, tokenManager, cfg.FrontendURL, logger).Register()
	srv := httpServer.NewHTTPServer(app, fmt.Sprintf(":%s", cfg.HTTP.Port))

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newUserStore(ctx context.Context, cfg config.Database) (model.UserStore, io.Closer, error) {
	if cfg.Driver == config.DriverMemory {
		return memory.NewUserRepository(), nopCloser{}, nil
	}

	db, err := postgres.NewConnection(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewUserRepository(db), db, nil
}

func newNotifier(cfg *config.Config, logger *logger.Logger) (model.Notifier, error) {
	if !cfg.Email.Enabled {
		return notifier.NewLog(cfg.FrontendURL, logger), nil
	}
	return notifier.NewMailer(cfg.Email, cfg.FrontendURL, logger)
}
