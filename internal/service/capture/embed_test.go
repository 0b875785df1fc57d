package capture

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"mockshot/internal/domain/models"
	"mockshot/internal/service/session"
	"mockshot/pkg/logger"
)

type stubRenderer struct{}

func (stubRenderer) Trading(d models.TradingDraft) (string, error) {
	return "<html>profit=" + d.Value("profit") + "</html>", nil
}

type stubCapturer struct {
	mu    sync.Mutex
	pages []string
}

func (c *stubCapturer) Capture(_ context.Context, html string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = append(c.pages, html)
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...), nil
}

func (c *stubCapturer) captured() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.pages...)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestEmbedUpdaterDebouncesToLatestDraft(t *testing.T) {
	store := session.NewStore(time.Minute)
	s := store.Create()
	shots := &stubCapturer{}
	u := NewEmbedUpdater(30*time.Millisecond, time.Second, store, stubRenderer{}, shots, testLogger(t))

	var notified sync.WaitGroup
	notified.Add(1)
	u.OnUpdate = func(*session.Session) { notified.Done() }

	for _, v := range []string{"1,000", "2,000", "3,000"} {
		_, err := store.Update(s.ID, func(live *session.Session) error {
			live.Trading.Values["profit"] = v
			return nil
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		u.Schedule(s.ID)
		time.Sleep(5 * time.Millisecond)
	}

	notified.Wait()
	pages := shots.captured()
	if len(pages) != 1 {
		t.Fatalf("three rapid edits must capture once, got %d", len(pages))
	}
	if !strings.Contains(pages[0], "profit=3,000") {
		t.Fatalf("capture must see the latest draft: %q", pages[0])
	}

	got, err := store.Get(s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.HasPrefix(got.Chat.EmbeddedImage, "data:image/png;base64,") {
		t.Fatalf("embedded image must be a png data URL, got %q", got.Chat.EmbeddedImage)
	}
}

func TestEmbedUpdaterStopCancelsPending(t *testing.T) {
	store := session.NewStore(time.Minute)
	s := store.Create()
	shots := &stubCapturer{}
	u := NewEmbedUpdater(20*time.Millisecond, time.Second, store, stubRenderer{}, shots, testLogger(t))

	u.Schedule(s.ID)
	u.Stop()
	time.Sleep(60 * time.Millisecond)

	if got := shots.captured(); len(got) != 0 {
		t.Fatalf("stopped updater must not capture, got %d", len(got))
	}

	// scheduling after Stop stays inert
	u.Schedule(s.ID)
	time.Sleep(60 * time.Millisecond)
	if got := shots.captured(); len(got) != 0 {
		t.Fatalf("schedule after stop must be a no-op")
	}
}

func TestEmbedUpdaterSkipsExpiredSession(t *testing.T) {
	store := session.NewStore(time.Minute)
	shots := &stubCapturer{}
	u := NewEmbedUpdater(10*time.Millisecond, time.Second, store, stubRenderer{}, shots, testLogger(t))

	u.Schedule("gone")
	time.Sleep(50 * time.Millisecond)
	if got := shots.captured(); len(got) != 0 {
		t.Fatalf("unknown session must not capture")
	}
}
