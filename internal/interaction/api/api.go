package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"goldkarat/internal/model"
)

type SpotPriceEngine interface {
	State() model.Snapshot
	Refresh(ctx context.Context) model.Snapshot
	StartAutoRefresh(interval time.Duration) (time.Duration, error)
	StopAutoRefresh()
	Interval() time.Duration
}

// Interaction serves the spot price engine over HTTP.
type Interaction struct {
	logger  *slog.Logger
	engine  SpotPriceEngine
	metrics http.Handler
	router  *gin.Engine
}

// NewInteraction builds the router. metrics may be nil, in which case /metrics is not exposed.
func NewInteraction(logger *slog.Logger, engine SpotPriceEngine, metrics http.Handler) *Interaction {
	cnt := &Interaction{
		logger:  logger.With("component", "api"),
		engine:  engine,
		metrics: metrics,
	}

	router := gin.New()
	router.Use(gin.Recovery(), cnt.logRequest)

	v1 := router.Group("/api/v1")
	v1.GET("/prices", cnt.handlerPrices)
	v1.POST("/refresh", cnt.handlerRefresh)
	v1.GET("/interval", cnt.handlerGetInterval)
	v1.PUT("/interval", cnt.handlerSetInterval)
	v1.DELETE("/interval", cnt.handlerStopInterval)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	cnt.router = router
	return cnt
}

func (that *Interaction) Handler() http.Handler {
	return that.router
}

// Start serves on addr until ctx is done, then shuts down gracefully.
func (that *Interaction) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           that.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		that.logger.Info("starting http server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	that.logger.Info("http server stopped")
	return nil
}

func (that *Interaction) logRequest(c *gin.Context) {
	started := time.Now()
	c.Next()

	that.logger.Debug("http request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"elapsed", time.Since(started),
	)
}
