// Package server exposes the distance engine, matrix, and override store
// over HTTP for browsing tools.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/tinrooster/cabledb/internal/config"
	"github.com/tinrooster/cabledb/internal/matrix"
	"github.com/tinrooster/cabledb/internal/notify"
	"gorm.io/gorm"
)

// StartOpts holds configuration for the API server.
type StartOpts struct {
	Session *matrix.Session
	DB      *gorm.DB // may be nil; disables persistence of mutations
	Notify  notify.Multi
	Export  config.ExportConfig
	Port    int
	Out     io.Writer
}

// Start launches the API server. It blocks until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.Session == nil {
		return fmt.Errorf("server: session is required")
	}
	if opts.Port <= 0 {
		opts.Port = 8080
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	svc := newService(opts.Session, opts.DB, opts.Notify)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	registerRoutes(router, svc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}

	// Scheduled matrix export, if configured.
	if opts.Export.Schedule != "" {
		go runExportLoop(ctx, opts.Export, opts.Session, opts.Out)
	}

	// Graceful shutdown on context cancellation; flush pending edits first.
	go func() {
		<-ctx.Done()
		svc.debouncer.Flush()
		srv.Shutdown(context.Background())
	}()

	fmt.Fprintf(opts.Out, "cabledb API listening on http://localhost:%d\n", opts.Port)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
