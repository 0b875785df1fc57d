// Package render turns session drafts into standalone HTML documents that
// the capture pipeline loads into a headless page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"unicode/utf8"

	"mockshot/internal/domain/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// UnknownTemplateError is returned when a trading draft names a template id
// outside the known set.
type UnknownTemplateError struct {
	Template string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown trading template %q", e.Template)
}

// templateDark marks which trading cards sit on a dark surface. The capture
// page uses the marker class to pick a matching backdrop.
var templateDark = map[string]bool{
	"daily-pl":          false,
	"account-summary":   true,
	"gain-loss":         false,
	"realized-pl":       true,
	"position-details":  true,
	"portfolio-value":   true,
	"profit-chart":      false,
	"stock-position":    true,
	"watchlist-item":    true,
	"options-position":  false,
	"day-pl-simple":     false,
	"brokerage-account": true,
	"filled-order":      false,
}

const pageShell = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<style>
html,body{margin:0;padding:0}
body{background:%s;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,"Helvetica Neue",Arial,sans-serif}
#capture-root{display:inline-block}
</style>
</head>
<body>
<div id="capture-root" class="%s">
%s</div>
</body>
</html>
`

// Renderer executes the embedded mock templates.
type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

type chatContext struct {
	models.ChatDraft
	Theme Theme
}

func (c chatContext) Spans() []Span      { return MentionSpans(c.Message) }
func (c chatContext) TypingLine() string { return TypingText(c.TypingUsers) }
func (c chatContext) Initials() string   { return Initials(c.Username) }
func (c chatContext) Avatar() string     { return AvatarColor(c.Username, c.AvatarColor) }
func (c chatContext) Badge() string {
	if c.NotificationCount == "" {
		return "99"
	}
	return c.NotificationCount
}

// EmbedURL lifts the embedded-image data URL past html/template's URL
// sanitizer, which would otherwise reject the data: scheme.
func (c chatContext) EmbedURL() template.URL { return template.URL(c.EmbeddedImage) }

type tradingContext struct {
	draft models.TradingDraft
}

// Field returns the draft value for name, or the template's stock fallback
// when the value is unset.
func (c tradingContext) Field(name, fallback string) string {
	if v := c.draft.Value(name); v != "" {
		return v
	}
	return fallback
}

// Symbol1 is the first character of the ticker, used for the avatar circle.
func (c tradingContext) Symbol1() string {
	if sym := c.draft.Value("symbol"); sym != "" {
		r, _ := utf8.DecodeRuneInString(sym)
		return string(r)
	}
	return "S"
}

// Chat renders the chat-message mock as a full capture page.
func (r *Renderer) Chat(d models.ChatDraft) (string, error) {
	ctx := chatContext{ChatDraft: d, Theme: ThemeFor(d.BackgroundTheme)}
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "chat", ctx); err != nil {
		return "", fmt.Errorf("render chat: %w", err)
	}
	return fmt.Sprintf(pageShell, ctx.Theme.Background, "theme-dark", buf.String()), nil
}

// Trading renders the active trading template as a full capture page.
// Unknown template ids fail; there is no generic fallback card.
func (r *Renderer) Trading(d models.TradingDraft) (string, error) {
	dark, ok := templateDark[d.Template]
	if !ok {
		return "", &UnknownTemplateError{Template: d.Template}
	}
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, d.Template, tradingContext{draft: d}); err != nil {
		return "", fmt.Errorf("render %s: %w", d.Template, err)
	}
	rootClass, background := "theme-light", "#F5F5F5"
	if dark {
		rootClass, background = "theme-dark", "#000000"
	}
	return fmt.Sprintf(pageShell, background, rootClass, buf.String()), nil
}
