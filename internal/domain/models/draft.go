package models

// Mock mode identifiers.
const (
	ModeChat    = "chat"
	ModeTrading = "trading"
)

// Reaction is one emoji pill under a chat message. Duplicate emojis are
// allowed; order is preserved.
type Reaction struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// ChatDraft holds the field values for the chat-message mock.
type ChatDraft struct {
	Username              string     `json:"username"`
	AvatarColor           string     `json:"avatarColor"`
	Message               string     `json:"message"`
	Timestamp             string     `json:"timestamp"`
	ChannelName           string     `json:"channelName"`
	Reactions             []Reaction `json:"reactions"`
	Verified              bool       `json:"verified"`
	EmbeddedImage         string     `json:"embeddedImage,omitempty"` // data URL
	NotificationCount     string     `json:"notificationCount"`
	ShowNotificationBadge bool       `json:"showNotificationBadge"`
	TypingUsers           []string   `json:"typingUsers"`
	ShowTypingIndicator   bool       `json:"showTypingIndicator"`
	BackgroundTheme       string     `json:"backgroundTheme"`
}

// TradingDraft holds the active template and the full value superset. Values
// for fields the active template does not show are retained, so switching
// templates never loses data.
type TradingDraft struct {
	Template string            `json:"template"`
	Values   map[string]string `json:"values"`
}

// Clone returns a deep copy; controller updates always replace wholesale.
func (d ChatDraft) Clone() ChatDraft {
	out := d
	out.Reactions = append([]Reaction(nil), d.Reactions...)
	out.TypingUsers = append([]string(nil), d.TypingUsers...)
	return out
}

// Clone returns a deep copy of the trading draft.
func (d TradingDraft) Clone() TradingDraft {
	out := TradingDraft{Template: d.Template, Values: make(map[string]string, len(d.Values))}
	for k, v := range d.Values {
		out.Values[k] = v
	}
	return out
}

// Value returns the named field or "" when unset.
func (d TradingDraft) Value(field string) string {
	return d.Values[field]
}

// DefaultChatDraft mirrors the stock example the generator opens with.
func DefaultChatDraft() ChatDraft {
	return ChatDraft{
		Username:    "Dr. Sugandese",
		AvatarColor: "#5865F2",
		Message:     "first day in here\U0001F602\U0001F602 i regret not going heavier but ah well nice one bro @MDT™",
		Timestamp:   "11:05 AM",
		ChannelName: "profits",
		Reactions: []Reaction{
			{Emoji: "\U0001F4B0", Count: 1},
			{Emoji: "\U0001F525", Count: 2},
		},
		Verified:              true,
		NotificationCount:     "99",
		ShowNotificationBadge: true,
		TypingUsers:           []string{"Boog"},
		ShowTypingIndicator:   true,
		BackgroundTheme:       "dark",
	}
}

// DefaultTradingDraft mirrors the stock example the generator opens with.
func DefaultTradingDraft() TradingDraft {
	return TradingDraft{
		Template: "daily-pl",
		Values: map[string]string{
			"profit":      "11,415",
			"percentage":  "30.69",
			"accountType": "ROTH IRA",
			"totalValue":  "46,316.19",
			"sharesOwned": "1,504.261",
			"averageCost": "8.19",
			"totalGain":   "34,002.50",
			"todayGain":   "1,188.36",
			"date":        "Oct-28-2025 1:56 p.m. ET",
			"proceeds":    "21,055.01",
			"costBasis":   "14,592.49",
		},
	}
}
