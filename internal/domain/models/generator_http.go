package models

// Requests for generator HTTP endpoints. Defined in domain for consistency and reuse.

// TradingUpdateRequest edits a single trading field; derivations run off the
// changed field name.
type TradingUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// TemplateRequest switches the active trading template.
type TemplateRequest struct {
	Template string `json:"template" validate:"required"`
}

// ChatPatchRequest carries a partial chat draft update; nil fields are left
// untouched. Applying a patch yields a complete replacement draft.
type ChatPatchRequest struct {
	Username              *string    `json:"username"`
	AvatarColor           *string    `json:"avatarColor"`
	Message               *string    `json:"message"`
	Timestamp             *string    `json:"timestamp"`
	ChannelName           *string    `json:"channelName"`
	Reactions             []Reaction `json:"reactions"`
	Verified              *bool      `json:"verified"`
	NotificationCount     *string    `json:"notificationCount"`
	ShowNotificationBadge *bool      `json:"showNotificationBadge"`
	TypingUsers           []string   `json:"typingUsers"`
	ShowTypingIndicator   *bool      `json:"showTypingIndicator"`
	BackgroundTheme       *string    `json:"backgroundTheme"`
}
