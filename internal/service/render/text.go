package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is one run of message text; mention spans get emphasis styling.
type Span struct {
	Text    string `json:"text"`
	Mention bool   `json:"mention"`
}

// MentionSpans tokenizes a message on @word boundaries, where a word is a
// contiguous non-whitespace run starting with '@'. Tokenization is a pure
// split of the input, so running it over already-tokenized text is a no-op.
func MentionSpans(message string) []Span {
	var spans []Span
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String()})
			plain.Reset()
		}
	}

	prev := rune(' ')
	i := 0
	for i < len(message) {
		r, size := utf8.DecodeRuneInString(message[i:])
		if r == '@' && unicode.IsSpace(prev) {
			j := i
			for j < len(message) {
				rj, sj := utf8.DecodeRuneInString(message[j:])
				if unicode.IsSpace(rj) {
					break
				}
				j += sj
			}
			if j > i+size { // skip a bare '@'
				flushPlain()
				spans = append(spans, Span{Text: message[i:j], Mention: true})
				prev = '@'
				i = j
				continue
			}
		}
		plain.WriteRune(r)
		prev = r
		i += size
	}
	flushPlain()
	return spans
}

// TypingText renders the bottom-bar typing indicator sentence.
func TypingText(users []string) string {
	switch len(users) {
	case 0:
		return "Someone is typing..."
	case 1:
		return fmt.Sprintf("%s is typing...", users[0])
	case 2:
		return fmt.Sprintf("%s and %s are typing...", users[0], users[1])
	case 3:
		return fmt.Sprintf("%s, %s, and %s are typing...", users[0], users[1], users[2])
	default:
		return fmt.Sprintf("%s, %s, and %d others are typing...", users[0], users[1], len(users)-2)
	}
}

// Initials is the avatar fallback: first two characters, upper-cased.
func Initials(username string) string {
	runes := []rune(username)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// avatarPalette matches the Discord default avatar colors.
var avatarPalette = [5]string{
	"#5865F2", // Blurple
	"#57F287", // Green
	"#FEE75C", // Yellow
	"#EB459E", // Pink
	"#ED4245", // Red
}

// AvatarColor picks the explicit color when set, otherwise a palette color
// keyed off the username length.
func AvatarColor(username, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return avatarPalette[utf8.RuneCountInString(username)%len(avatarPalette)]
}
