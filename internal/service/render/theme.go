package render

// Theme carries the chat background palette selected for a draft.
type Theme struct {
	Name           string `json:"name"`
	Background     string `json:"background"`
	Border         string `json:"border"`
	Text           string `json:"text"`
	TextSecondary  string `json:"textSecondary"`
	ReactionBg     string `json:"reactionBg"`
	ReactionBorder string `json:"reactionBorder"`
}

var chatThemes = map[string]Theme{
	"dark": {
		Name:           "Default Dark",
		Background:     "#313338",
		Border:         "#26282C",
		Text:           "#F2F3F5",
		TextSecondary:  "#B5BAC1",
		ReactionBg:     "#2B2D31",
		ReactionBorder: "#3F4147",
	},
	"#1E1F22": {
		Name:           "Midnight",
		Background:     "#1E1F22",
		Border:         "#1E1F22",
		Text:           "#F2F3F5",
		TextSecondary:  "#B5BAC1",
		ReactionBg:     "#232428",
		ReactionBorder: "#3F4147",
	},
	"#0A0A0A": {
		Name:           "Darker",
		Background:     "#0A0A0A",
		Border:         "#1A1A1A",
		Text:           "#F2F3F5",
		TextSecondary:  "#B5BAC1",
		ReactionBg:     "#1A1A1A",
		ReactionBorder: "#2A2A2A",
	},
}

// ThemeFor resolves a chat background theme key; unknown keys fall back to
// the default dark theme.
func ThemeFor(key string) Theme {
	if t, ok := chatThemes[key]; ok {
		return t
	}
	return chatThemes["dark"]
}
