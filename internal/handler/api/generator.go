// Package api exposes the screenshot generator over HTTP in the project's
// standard envelope, except for the stock quote route which keeps its
// original plain wire shape.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"mockshot/internal/domain/models"
	"mockshot/internal/service/draft"
	"mockshot/internal/service/quote"
	"mockshot/internal/service/render"
	"mockshot/internal/service/schema"
	"mockshot/internal/service/session"
	xhttp "mockshot/pkg/http"
	xlogger "mockshot/pkg/logger"
	"mockshot/pkg/metrics"
)

// QuoteService fetches live quotes for the symbol helper route.
type QuoteService interface {
	Fetch(ctx context.Context, symbol string) (*models.Quote, error)
}

// CapturePipeline turns a rendered document into PNG bytes.
type CapturePipeline interface {
	Capture(ctx context.Context, html string) ([]byte, error)
}

// GeneratorHandler wires the generator services into Echo routes.
type GeneratorHandler struct {
	logger   *xlogger.Logger
	quotes   QuoteService
	sessions *session.Store
	drafts   *draft.Controller
	renderer *render.Renderer
	pipeline CapturePipeline
	schema   *schema.Resolver
	metrics  *metrics.Recorder
	hub      *Hub
}

func NewGeneratorHandler(
	logger *xlogger.Logger,
	quotes QuoteService,
	sessions *session.Store,
	drafts *draft.Controller,
	renderer *render.Renderer,
	pipeline CapturePipeline,
	resolver *schema.Resolver,
	rec *metrics.Recorder,
	hub *Hub,
) *GeneratorHandler {
	return &GeneratorHandler{
		logger:   logger,
		quotes:   quotes,
		sessions: sessions,
		drafts:   drafts,
		renderer: renderer,
		pipeline: pipeline,
		schema:   resolver,
		metrics:  rec,
		hub:      hub,
	}
}

func (h *GeneratorHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/stock/:symbol", h.StockQuote)

	g.POST("/sessions", h.CreateSession)
	g.GET("/sessions/:id", h.GetSession)
	g.DELETE("/sessions/:id", h.DeleteSession)
	g.PUT("/sessions/:id/chat", h.UpdateChat)
	g.PUT("/sessions/:id/trading", h.UpdateTrading)
	g.PUT("/sessions/:id/trading/template", h.SetTemplate)
	g.POST("/sessions/:id/randomize", h.Randomize)
	g.GET("/sessions/:id/preview", h.Preview)
	g.POST("/sessions/:id/capture", h.Capture)

	g.GET("/templates", h.Templates)
	g.GET("/messages/presets", h.MessagePresets)

	e.GET("/ws/sessions/:id", h.Subscribe)
}

// sessionView is the session payload plus the field list the active
// trading template actually shows.
type sessionView struct {
	*session.Session
	RelevantFields []string `json:"relevantFields"`
}

func (h *GeneratorHandler) view(s *session.Session) *sessionView {
	return &sessionView{Session: s, RelevantFields: h.schema.RelevantFields(s.Trading.Template)}
}

// PushSession re-renders both previews and fans them out to websocket
// subscribers. Registered as the change callback of the draft controller
// and the embed updater.
func (h *GeneratorHandler) PushSession(s *session.Session) {
	chat, err := h.renderer.Chat(s.Chat)
	if err != nil {
		h.logger.Error("chat preview render failed", xlogger.Error(err))
		return
	}
	trading, err := h.renderer.Trading(s.Trading)
	if err != nil {
		h.logger.Error("trading preview render failed", xlogger.Error(err))
		return
	}
	h.hub.Broadcast(s.ID, PreviewEvent{
		Type:      "preview",
		SessionID: s.ID,
		Chat:      chat,
		Trading:   trading,
		Session:   h.view(s),
	})
}

// StockQuote proxies the upstream chart API. This route keeps the plain
// original shape: string prices, bare {"error"} on failure, no envelope.
func (h *GeneratorHandler) StockQuote(c echo.Context) error {
	start := time.Now()
	q, err := h.quotes.Fetch(c.Request().Context(), c.Param("symbol"))
	h.metrics.RecordLatency("quote_fetch", time.Since(start).Seconds())
	if err != nil {
		var nf *quote.NotFoundError
		switch {
		case errors.Is(err, quote.ErrMissingSymbol):
			h.metrics.RecordQuoteFetch("error")
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Symbol is required"})
		case errors.As(err, &nf):
			h.metrics.RecordQuoteFetch("not_found")
			return c.JSON(http.StatusNotFound, map[string]string{"error": nf.Error()})
		default:
			h.logger.Error("stock fetch error", xlogger.String("symbol", c.Param("symbol")), xlogger.Error(err))
			h.metrics.RecordQuoteFetch("error")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch stock data"})
		}
	}

	h.metrics.RecordQuoteFetch("ok")
	resp := map[string]interface{}{
		"symbol":        q.Symbol,
		"currentPrice":  strconv.FormatFloat(q.CurrentPrice, 'f', 2, 64),
		"previousClose": strconv.FormatFloat(q.PreviousClose, 'f', 2, 64),
		"change":        strconv.FormatFloat(q.Change, 'f', 2, 64),
		"changePercent": strconv.FormatFloat(q.ChangePercent, 'f', 2, 64),
		"currency":      q.Currency,
	}
	if q.MarketCap != 0 {
		resp["marketCap"] = q.MarketCap
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GeneratorHandler) CreateSession(c echo.Context) error {
	s := h.sessions.Create()
	h.metrics.SetActiveSessions(h.sessions.Len())
	h.logger.Info("session created", xlogger.String("session", s.ID))
	return xhttp.CreatedResponse(c, h.view(s))
}

func (h *GeneratorHandler) GetSession(c echo.Context) error {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	return xhttp.SuccessResponse(c, h.view(s))
}

func (h *GeneratorHandler) DeleteSession(c echo.Context) error {
	h.sessions.Delete(c.Param("id"))
	h.metrics.SetActiveSessions(h.sessions.Len())
	return xhttp.NoContentResponse(c)
}

func (h *GeneratorHandler) UpdateChat(c echo.Context) error {
	req := &models.ChatPatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	s, err := h.drafts.UpdateChat(c.Param("id"), *req)
	if err != nil {
		return h.sessionError(c, err)
	}
	return xhttp.SuccessResponse(c, h.view(s))
}

func (h *GeneratorHandler) UpdateTrading(c echo.Context) error {
	req := &models.TradingUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	s, err := h.drafts.UpdateTrading(c.Param("id"), req.Field, req.Value)
	if err != nil {
		return h.sessionError(c, err)
	}
	return xhttp.SuccessResponse(c, h.view(s))
}

func (h *GeneratorHandler) SetTemplate(c echo.Context) error {
	req := &models.TemplateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	s, err := h.drafts.SetTemplate(c.Param("id"), req.Template)
	if err != nil {
		var ute *draft.UnknownTemplateError
		if errors.As(err, &ute) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("unknown template %q", ute.Template))
		}
		return h.sessionError(c, err)
	}
	return xhttp.SuccessResponse(c, h.view(s))
}

func (h *GeneratorHandler) Randomize(c echo.Context) error {
	mode, ok := modeParam(c)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("mode must be one of: chat, trading"))
	}
	s, err := h.drafts.Randomize(c.Param("id"), mode)
	if err != nil {
		return h.sessionError(c, err)
	}
	return xhttp.SuccessResponse(c, h.view(s))
}

func (h *GeneratorHandler) Preview(c echo.Context) error {
	mode, ok := modeParam(c)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("mode must be one of: chat, trading"))
	}
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	html, err := h.renderMode(s, mode)
	if err != nil {
		h.logger.Error("preview render failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("render failed"))
	}
	h.metrics.RecordRender(mode)
	return c.HTML(http.StatusOK, html)
}

func (h *GeneratorHandler) Capture(c echo.Context) error {
	mode, ok := modeParam(c)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("mode must be one of: chat, trading"))
	}
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	html, err := h.renderMode(s, mode)
	if err != nil {
		h.logger.Error("capture render failed", xlogger.Error(err))
		h.metrics.RecordCapture(mode, "error")
		return xhttp.AppErrorResponse(c, xhttp.InternalError("render failed"))
	}

	start := time.Now()
	png, err := h.pipeline.Capture(c.Request().Context(), html)
	h.metrics.RecordLatency("capture", time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("capture failed", xlogger.String("session", s.ID), xlogger.Error(err))
		h.metrics.RecordCapture(mode, "error")
		return xhttp.AppErrorResponse(c, xhttp.InternalError("screenshot capture failed"))
	}

	h.metrics.RecordCapture(mode, "ok")
	filename := fmt.Sprintf("%s-screenshot-%d.png", mode, time.Now().UnixMilli())
	return xhttp.FileResponse(c, filename, "image/png", png)
}

// modeParam reads the mock mode from the query string. The default binder
// skips query params on POST, so this is read by hand on every mode route.
func modeParam(c echo.Context) (string, bool) {
	switch mode := c.QueryParam("mode"); mode {
	case "":
		return models.ModeChat, true
	case models.ModeChat, models.ModeTrading:
		return mode, true
	default:
		return "", false
	}
}

// templateInfo pairs a template id with its ordered field list.
type templateInfo struct {
	ID     string   `json:"id"`
	Fields []string `json:"fields"`
}

func (h *GeneratorHandler) Templates(c echo.Context) error {
	ids := h.schema.TemplateIDs()
	list := make([]templateInfo, 0, len(ids))
	for _, id := range ids {
		list = append(list, templateInfo{ID: id, Fields: h.schema.RelevantFields(id)})
	}
	return xhttp.ListResponse(c, list, int64(len(list)))
}

func (h *GeneratorHandler) MessagePresets(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"messages":         render.MessagePresets(),
		"emojis":           render.EmojiPresets(),
		"avatarColors":     render.AvatarColors(),
		"backgroundThemes": render.BackgroundThemes(),
	})
}

func (h *GeneratorHandler) Subscribe(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.sessions.Get(id); err != nil {
		return h.sessionError(c, err)
	}
	return h.hub.Serve(c, id)
}

func (h *GeneratorHandler) renderMode(s *session.Session, mode string) (string, error) {
	if mode == models.ModeTrading {
		return h.renderer.Trading(s.Trading)
	}
	return h.renderer.Chat(s.Chat)
}

func (h *GeneratorHandler) sessionError(c echo.Context, err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("session %q not found", c.Param("id")))
	}
	h.logger.Error("session operation failed", xlogger.Error(err))
	return xhttp.AppErrorResponse(c, err)
}
