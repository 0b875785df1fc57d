// Package draft applies form edits to session drafts and keeps the derived
// state (recalculated fields, the embedded screenshot) in step.
package draft

import (
	"fmt"
	"math/rand"
	"sync"

	"mockshot/internal/domain/models"
	"mockshot/internal/service/schema"
	"mockshot/internal/service/session"
	"mockshot/pkg/logger"
)

// UnknownTemplateError rejects template switches outside the known set.
type UnknownTemplateError struct {
	Template string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown trading template %q", e.Template)
}

// Scheduler queues an embedded-screenshot regeneration for a session.
type Scheduler interface {
	Schedule(sessionID string)
}

// Controller routes draft edits through the store, triggering derivations
// and embed regeneration as a side effect.
type Controller struct {
	sessions *session.Store
	schema   *schema.Resolver
	embeds   Scheduler
	log      *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand

	// OnChange, when set, receives every committed session snapshot.
	OnChange func(s *session.Session)
}

func NewController(sessions *session.Store, resolver *schema.Resolver, embeds Scheduler, log *logger.Logger) *Controller {
	return &Controller{
		sessions: sessions,
		schema:   resolver,
		embeds:   embeds,
		log:      log,
		rng:      newRNG(),
	}
}

func (c *Controller) changed(s *session.Session) {
	if c.OnChange != nil {
		c.OnChange(s)
	}
}

// UpdateChat applies a partial chat patch; nil fields keep their value.
// Reaction counts are floored at 1.
func (c *Controller) UpdateChat(sessionID string, patch models.ChatPatchRequest) (*session.Session, error) {
	s, err := c.sessions.Update(sessionID, func(live *session.Session) error {
		applyChatPatch(&live.Chat, patch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.changed(s)
	return s, nil
}

func applyChatPatch(d *models.ChatDraft, p models.ChatPatchRequest) {
	if p.Username != nil {
		d.Username = *p.Username
	}
	if p.AvatarColor != nil {
		d.AvatarColor = *p.AvatarColor
	}
	if p.Message != nil {
		d.Message = *p.Message
	}
	if p.Timestamp != nil {
		d.Timestamp = *p.Timestamp
	}
	if p.ChannelName != nil {
		d.ChannelName = *p.ChannelName
	}
	if p.Reactions != nil {
		reactions := make([]models.Reaction, 0, len(p.Reactions))
		for _, r := range p.Reactions {
			if r.Count < 1 {
				r.Count = 1
			}
			reactions = append(reactions, r)
		}
		d.Reactions = reactions
	}
	if p.Verified != nil {
		d.Verified = *p.Verified
	}
	if p.NotificationCount != nil {
		d.NotificationCount = *p.NotificationCount
	}
	if p.ShowNotificationBadge != nil {
		d.ShowNotificationBadge = *p.ShowNotificationBadge
	}
	if p.TypingUsers != nil {
		d.TypingUsers = append([]string(nil), p.TypingUsers...)
	}
	if p.ShowTypingIndicator != nil {
		d.ShowTypingIndicator = *p.ShowTypingIndicator
	}
	if p.BackgroundTheme != nil {
		d.BackgroundTheme = *p.BackgroundTheme
	}
}

// UpdateTrading applies one field edit, runs the template's derivation rule
// and queues an embedded-screenshot refresh.
func (c *Controller) UpdateTrading(sessionID, field, value string) (*session.Session, error) {
	s, err := c.sessions.Update(sessionID, func(live *session.Session) error {
		live.Trading = c.schema.Derive(live.Trading, field, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.embeds.Schedule(sessionID)
	c.changed(s)
	return s, nil
}

// SetTemplate switches the active trading template. Field values are kept
// wholesale, so switching back restores the previous card.
func (c *Controller) SetTemplate(sessionID, template string) (*session.Session, error) {
	if !c.schema.Known(template) {
		return nil, &UnknownTemplateError{Template: template}
	}
	s, err := c.sessions.Update(sessionID, func(live *session.Session) error {
		live.Trading.Template = template
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.embeds.Schedule(sessionID)
	c.changed(s)
	return s, nil
}

// Randomize shuffles the requested draft and returns the refreshed session.
func (c *Controller) Randomize(sessionID, mode string) (*session.Session, error) {
	var s *session.Session
	var err error
	switch mode {
	case models.ModeTrading:
		s, err = c.sessions.Update(sessionID, func(live *session.Session) error {
			c.randomTrading(&live.Trading)
			return nil
		})
	default:
		s, err = c.sessions.Update(sessionID, func(live *session.Session) error {
			c.randomChat(&live.Chat)
			return nil
		})
	}
	if err != nil {
		return nil, err
	}
	if mode == models.ModeTrading {
		c.embeds.Schedule(sessionID)
	}
	c.log.Debug("randomized draft", logger.String("session", sessionID), logger.String("mode", mode))
	c.changed(s)
	return s, nil
}
