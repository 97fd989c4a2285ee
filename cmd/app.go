package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"userdir/api"
	"userdir/config"
	"userdir/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用程序结构体
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests within the
// configured shutdown timeout.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("addr", a.server.Addr),
			zap.String("health", "/api/v1/health"),
			zap.String("metrics", "/metrics"))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	return a.Shutdown()
}

// Shutdown stops the HTTP server and closes the database pool.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	logger.Info("Server stopped")
	return errors.Join(errs...)
}

// Handler 获取 HTTP handler（用于测试）
func (a *App) Handler() http.Handler {
	return a.router.GetEngine()
}
