package draft

import (
	"errors"
	"strings"
	"testing"
	"time"

	"mockshot/internal/domain/models"
	"mockshot/internal/service/schema"
	"mockshot/internal/service/session"
	"mockshot/pkg/logger"
)

type recordingScheduler struct {
	scheduled []string
}

func (r *recordingScheduler) Schedule(sessionID string) {
	r.scheduled = append(r.scheduled, sessionID)
}

func newController(t *testing.T) (*Controller, *session.Store, *recordingScheduler) {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	store := session.NewStore(time.Minute)
	sched := &recordingScheduler{}
	return NewController(store, schema.New(), sched, log), store, sched
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestUpdateChatPatchesOnlySetFields(t *testing.T) {
	c, store, _ := newController(t)
	s := store.Create()

	updated, err := c.UpdateChat(s.ID, models.ChatPatchRequest{
		Username: strp("GainzKing"),
		Verified: boolp(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Chat.Username != "GainzKing" {
		t.Fatalf("username = %q", updated.Chat.Username)
	}
	if updated.Chat.Verified {
		t.Fatalf("verified should be cleared")
	}
	// untouched fields survive
	if updated.Chat.ChannelName != "profits" {
		t.Fatalf("channel = %q", updated.Chat.ChannelName)
	}
	if len(updated.Chat.Reactions) != 2 {
		t.Fatalf("reactions must be untouched, got %v", updated.Chat.Reactions)
	}
}

func TestUpdateChatClampsReactionCounts(t *testing.T) {
	c, store, _ := newController(t)
	s := store.Create()

	updated, err := c.UpdateChat(s.ID, models.ChatPatchRequest{
		Reactions: []models.Reaction{{Emoji: "🔥", Count: 0}, {Emoji: "💰", Count: -3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range updated.Chat.Reactions {
		if r.Count < 1 {
			t.Fatalf("reaction count %d must be clamped to 1", r.Count)
		}
	}
}

func TestUpdateChatDoesNotScheduleEmbed(t *testing.T) {
	c, store, sched := newController(t)
	s := store.Create()

	if _, err := c.UpdateChat(s.ID, models.ChatPatchRequest{Username: strp("x")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.scheduled) != 0 {
		t.Fatalf("chat edits must not regenerate the embed")
	}
}

func TestUpdateTradingDerivesAndSchedules(t *testing.T) {
	c, store, sched := newController(t)
	s := store.Create()

	if _, err := c.SetTemplate(s.ID, "gain-loss"); err != nil {
		t.Fatalf("set template: %v", err)
	}
	updated, err := c.UpdateTrading(s.ID, "proceeds", "21,055.01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := updated.Trading.Value("profit"); got != "6,462.52" {
		t.Fatalf("profit = %q", got)
	}
	// one schedule from the template switch, one from the edit
	if len(sched.scheduled) != 2 {
		t.Fatalf("scheduled %d times", len(sched.scheduled))
	}
}

func TestSetTemplateUnknown(t *testing.T) {
	c, store, sched := newController(t)
	s := store.Create()

	_, err := c.SetTemplate(s.ID, "nope")
	var ute *UnknownTemplateError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTemplateError, got %v", err)
	}
	if len(sched.scheduled) != 0 {
		t.Fatalf("rejected switch must not schedule")
	}
}

func TestSetTemplateRetainsValues(t *testing.T) {
	c, store, _ := newController(t)
	s := store.Create()

	if _, err := c.UpdateTrading(s.ID, "profit", "52,000"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := c.SetTemplate(s.ID, "realized-pl"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	back, err := c.SetTemplate(s.ID, "daily-pl")
	if err != nil {
		t.Fatalf("switch back: %v", err)
	}
	if got := back.Trading.Value("profit"); got != "52,000" {
		t.Fatalf("values must survive template switches, got %q", got)
	}
}

func TestRandomizeChat(t *testing.T) {
	c, store, sched := newController(t)
	s := store.Create()

	updated, err := c.Randomize(s.ID, models.ModeChat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Chat.Username == "" {
		t.Fatalf("randomize must pick a username")
	}
	if strings.Contains(updated.Chat.Message, "{mention}") {
		t.Fatalf("mention slots must be substituted: %q", updated.Chat.Message)
	}
	if len(sched.scheduled) != 0 {
		t.Fatalf("chat randomize must not regenerate the embed")
	}
	// layout toggles untouched
	if !updated.Chat.ShowNotificationBadge || !updated.Chat.ShowTypingIndicator {
		t.Fatalf("randomize must not flip layout toggles")
	}
}

func TestRandomizeTrading(t *testing.T) {
	c, store, sched := newController(t)
	s := store.Create()

	updated, err := c.Randomize(s.ID, models.ModeTrading)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"profit", "percentage", "totalValue", "totalGain", "todayGain", "timePeriod", "date"} {
		if updated.Trading.Value(field) == "" {
			t.Fatalf("field %q must be set after randomize", field)
		}
	}
	if !strings.HasSuffix(updated.Trading.Value("date"), "ET") {
		t.Fatalf("stamp = %q", updated.Trading.Value("date"))
	}
	if len(sched.scheduled) != 1 {
		t.Fatalf("trading randomize schedules one regen, got %d", len(sched.scheduled))
	}
}

func TestOnChangeFires(t *testing.T) {
	c, store, _ := newController(t)
	s := store.Create()

	var seen int
	c.OnChange = func(*session.Session) { seen++ }
	if _, err := c.UpdateChat(s.ID, models.ChatPatchRequest{Username: strp("x")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.UpdateTrading(s.ID, "profit", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != 2 {
		t.Fatalf("OnChange fired %d times", seen)
	}
}

func TestUpdateUnknownSession(t *testing.T) {
	c, _, _ := newController(t)
	if _, err := c.UpdateTrading("missing", "profit", "1"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
