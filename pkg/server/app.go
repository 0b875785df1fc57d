// Package server owns the application lifecycle: browser launch, HTTP
// serving and ordered shutdown.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mockshot/internal/handler/api"
	"mockshot/internal/service/capture"
	"mockshot/pkg/config"
	xhttp "mockshot/pkg/http"
	applogger "mockshot/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	browser    *capture.Browser
	embeds     *capture.EmbedUpdater
	hub        *api.Hub
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	browser *capture.Browser,
	embeds *capture.EmbedUpdater,
	hub *api.Hub,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		browser: browser,
		embeds:  embeds,
		hub:     hub,
		handler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Launch Chrome up front so the first capture does not pay the cold
	// start. A failed launch is not fatal: previews and drafts still work,
	// capture requests report the error.
	if err := a.browser.Start(ctx); err != nil {
		a.log.Warn("chrome launch failed, captures unavailable", applogger.Error(err))
	} else {
		a.log.Info("chrome ready", applogger.Bool("headless", a.cfg.Capture.Headless))
	}

	a.httpServer = xhttp.NewServer(a.handler, a.log,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown stops services in dependency order: no new embed work, then
// subscribers, then the listener, then Chrome.
func (a *App) shutdown(ctx context.Context) error {
	a.embeds.Stop()
	a.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if err := a.browser.Stop(); err != nil {
		a.log.Warn("chrome stop error", applogger.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}
