package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labelprint/backend/internal/infrastructure/logger"
	"github.com/labelprint/backend/internal/interfaces/http/handler"
	"github.com/labelprint/backend/internal/interfaces/http/middleware"
	"github.com/labelprint/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds the wait for in-flight requests on shutdown
const ShutdownTimeout = 30 * time.Second

// NewEngine builds the gin engine with the middleware stack and all routes
func (a *App) NewEngine() (*gin.Engine, error) {
	if a.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	form, err := handler.NewFormHandler(a.Service, a.Style, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load form template: %w", err)
	}

	engine := gin.New()

	// Order: request id, recovery, request log, headers
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(a.Logger))
	engine.Use(logger.GinMiddleware(a.Logger))
	engine.Use(middleware.Secure())
	engine.NoRoute(handler.NoRoute)

	router.NewRouter(engine).
		Register(handler.FormRoutes(form, middleware.BodyLimit(a.Config.HTTP.MaxBodySize))).
		Register(handler.LabelRoutes(handler.NewLabelHandler(a.Service, a.Logger))).
		Register(handler.HealthRoutes(handler.NewHealthHandler(a.Config.App.Name))).
		Setup()

	return engine, nil
}

// NewServer wraps the engine in an http.Server listening on app.port
func (a *App) NewServer() (*http.Server, error) {
	engine, err := a.NewEngine()
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:           ":" + a.Config.App.Port,
		Handler:        engine,
		ReadTimeout:    a.Config.HTTP.ReadTimeout,
		WriteTimeout:   a.Config.HTTP.WriteTimeout,
		IdleTimeout:    a.Config.HTTP.IdleTimeout,
		MaxHeaderBytes: a.Config.HTTP.MaxHeaderBytes,
	}, nil
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully
func Serve(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited gracefully")
	return nil
}
