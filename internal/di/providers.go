package di

import (
	"fmt"

	"mockshot/internal/handler/api"
	"mockshot/internal/service/capture"
	"mockshot/internal/service/draft"
	"mockshot/internal/service/quote"
	"mockshot/internal/service/render"
	"mockshot/internal/service/schema"
	"mockshot/internal/service/session"
	"mockshot/pkg/config"
	"mockshot/pkg/logger"
	"mockshot/pkg/metrics"
	"mockshot/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideQuoteClient creates the upstream quote client.
func ProvideQuoteClient(cfg *config.Config) *quote.Client {
	return quote.New(cfg.Quote.BaseURL, cfg.Quote.UserAgent, cfg.Quote.Timeout)
}

// ProvideSessionStore creates the in-memory session table.
func ProvideSessionStore(cfg *config.Config) *session.Store {
	return session.NewStore(cfg.Session.TTL)
}

// ProvideSchemaResolver creates the template field resolver.
func ProvideSchemaResolver() *schema.Resolver {
	return schema.New()
}

// ProvideRenderer parses the embedded mock templates.
func ProvideRenderer() (*render.Renderer, error) {
	r, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return r, nil
}

// ProvideBrowser creates the shared Chrome handle; launch happens in App.Run.
func ProvideBrowser(cfg *config.Config) *capture.Browser {
	return capture.NewBrowser(cfg.Capture.ChromeBin, cfg.Capture.Headless)
}

// ProvidePipeline creates the screenshot capture pipeline.
func ProvidePipeline(browser *capture.Browser, cfg *config.Config, log *logger.Logger) *capture.Pipeline {
	return capture.NewPipeline(browser, capture.Options{
		ViewportWidth:  cfg.Capture.ViewportWidth,
		ViewportHeight: cfg.Capture.ViewportHeight,
		DeviceScale:    cfg.Capture.DeviceScale,
		PageTimeout:    cfg.Capture.PageTimeout,
		SettleDelay:    cfg.Capture.SettleDelay,
	}, log)
}

// ProvideEmbedUpdater creates the debounced embedded-screenshot refresher.
func ProvideEmbedUpdater(
	cfg *config.Config,
	sessions *session.Store,
	renderer *render.Renderer,
	pipeline *capture.Pipeline,
	log *logger.Logger,
) *capture.EmbedUpdater {
	return capture.NewEmbedUpdater(cfg.Capture.EmbedDebounce, cfg.Capture.PageTimeout, sessions, renderer, pipeline, log)
}

// ProvideDraftController creates the form state controller.
func ProvideDraftController(
	sessions *session.Store,
	resolver *schema.Resolver,
	embeds *capture.EmbedUpdater,
	log *logger.Logger,
) *draft.Controller {
	return draft.NewController(sessions, resolver, embeds, log)
}

// ProvideHub creates the websocket preview hub.
func ProvideHub(log *logger.Logger) *api.Hub {
	return api.NewHub(log)
}

// ProvideGeneratorHandler creates the HTTP handler and hooks the preview
// push into draft changes and embed refreshes.
func ProvideGeneratorHandler(
	log *logger.Logger,
	quotes *quote.Client,
	sessions *session.Store,
	controller *draft.Controller,
	renderer *render.Renderer,
	pipeline *capture.Pipeline,
	resolver *schema.Resolver,
	rec *metrics.Recorder,
	hub *api.Hub,
	embeds *capture.EmbedUpdater,
) *api.GeneratorHandler {
	h := api.NewGeneratorHandler(log, quotes, sessions, controller, renderer, pipeline, resolver, rec, hub)
	controller.OnChange = h.PushSession
	embeds.OnUpdate = h.PushSession
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	browser *capture.Browser,
	embeds *capture.EmbedUpdater,
	hub *api.Hub,
	handler *api.GeneratorHandler,
) *server.App {
	return server.New(cfg, log, browser, embeds, hub, handler)
}
