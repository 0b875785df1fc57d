package capture

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"mockshot/internal/domain/models"
	"mockshot/internal/service/session"
	"mockshot/pkg/logger"
)

// Capturer is the slice of the pipeline the updater needs; tests swap in a
// stub so no browser is required.
type Capturer interface {
	Capture(ctx context.Context, html string) ([]byte, error)
}

// TradingRenderer renders the active trading template to a capture page.
type TradingRenderer interface {
	Trading(d models.TradingDraft) (string, error)
}

// EmbedUpdater keeps each chat draft's embedded screenshot in sync with the
// session's trading draft. Edits arrive in bursts while the user types, so
// regeneration is debounced per session and always renders the latest draft
// at fire time.
type EmbedUpdater struct {
	mu         sync.Mutex
	debouncers map[string]*Debouncer
	stopped    bool

	delay    time.Duration
	timeout  time.Duration
	sessions *session.Store
	render   TradingRenderer
	capture  Capturer
	log      *logger.Logger

	// OnUpdate, when set, receives the refreshed session after the embedded
	// image lands.
	OnUpdate func(s *session.Session)
}

func NewEmbedUpdater(delay, timeout time.Duration, sessions *session.Store, render TradingRenderer, capture Capturer, log *logger.Logger) *EmbedUpdater {
	return &EmbedUpdater{
		debouncers: make(map[string]*Debouncer),
		delay:      delay,
		timeout:    timeout,
		sessions:   sessions,
		render:     render,
		capture:    capture,
		log:        log,
	}
}

// Schedule queues a regeneration for the session, resetting its debounce
// window.
func (u *EmbedUpdater) Schedule(sessionID string) {
	u.mu.Lock()
	if u.stopped {
		u.mu.Unlock()
		return
	}
	d, ok := u.debouncers[sessionID]
	if !ok {
		d = NewDebouncer(u.delay)
		u.debouncers[sessionID] = d
	}
	u.mu.Unlock()

	d.Trigger(func() { u.regenerate(sessionID) })
}

// Stop cancels every pending regeneration. Scheduled after Stop is a no-op.
func (u *EmbedUpdater) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.stopped = true
	for _, d := range u.debouncers {
		d.Stop()
	}
}

func (u *EmbedUpdater) regenerate(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), u.timeout)
	defer cancel()

	// Read the draft as it stands now, not as it was when scheduled.
	s, err := u.sessions.Get(sessionID)
	if err != nil {
		u.log.Debug("embed regeneration skipped", logger.String("session", sessionID), logger.Error(err))
		return
	}

	html, err := u.render.Trading(s.Trading)
	if err != nil {
		u.log.Warn("embed render failed", logger.String("session", sessionID), logger.Error(err))
		return
	}
	png, err := u.capture.Capture(ctx, html)
	if err != nil {
		u.log.Warn("embed capture failed", logger.String("session", sessionID), logger.Error(err))
		return
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	updated, err := u.sessions.Update(sessionID, func(live *session.Session) error {
		live.Chat.EmbeddedImage = dataURL
		return nil
	})
	if err != nil {
		u.log.Debug("embed store failed", logger.String("session", sessionID), logger.Error(err))
		return
	}

	u.log.Debug("embedded image refreshed",
		logger.String("session", sessionID),
		logger.String("template", updated.Trading.Template),
		logger.Int("bytes", len(png)),
	)
	if u.OnUpdate != nil {
		u.OnUpdate(updated)
	}
}
