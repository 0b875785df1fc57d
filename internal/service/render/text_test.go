package render

import (
	"strings"
	"testing"
)

func TestMentionSpansSingleMention(t *testing.T) {
	spans := MentionSpans("nice one bro @MDT™ cheers")
	var mentions []string
	for _, s := range spans {
		if s.Mention {
			mentions = append(mentions, s.Text)
		}
	}
	if len(mentions) != 1 || mentions[0] != "@MDT™" {
		t.Fatalf("mentions = %v", mentions)
	}
}

func TestMentionSpansPreserveText(t *testing.T) {
	msg := "thanks @alice and @bob for the play"
	spans := MentionSpans(msg)

	var joined strings.Builder
	for _, s := range spans {
		joined.WriteString(s.Text)
	}
	if joined.String() != msg {
		t.Fatalf("spans must reassemble the input: %q", joined.String())
	}
}

func TestMentionSpansBareAt(t *testing.T) {
	spans := MentionSpans("meet @ noon")
	for _, s := range spans {
		if s.Mention {
			t.Fatalf("a bare @ is not a mention: %v", spans)
		}
	}
}

func TestMentionSpansMidWordAt(t *testing.T) {
	spans := MentionSpans("mail me at user@example.com")
	for _, s := range spans {
		if s.Mention {
			t.Fatalf("mid-word @ must stay plain text: %v", spans)
		}
	}
}

func TestMentionSpansIdempotent(t *testing.T) {
	msg := "gg @winner gg"
	first := MentionSpans(msg)

	var rejoined strings.Builder
	for _, s := range first {
		rejoined.WriteString(s.Text)
	}
	second := MentionSpans(rejoined.String())
	if len(first) != len(second) {
		t.Fatalf("re-tokenizing changed the spans: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("span %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestTypingText(t *testing.T) {
	tests := []struct {
		users []string
		want  string
	}{
		{nil, "Someone is typing..."},
		{[]string{"Boog"}, "Boog is typing..."},
		{[]string{"Boog", "MDT"}, "Boog and MDT are typing..."},
		{[]string{"A", "B", "C"}, "A, B, and C are typing..."},
		{[]string{"A", "B", "C", "D"}, "A, B, and 2 others are typing..."},
		{[]string{"A", "B", "C", "D", "E", "F"}, "A, B, and 4 others are typing..."},
	}
	for _, tt := range tests {
		if got := TypingText(tt.users); got != tt.want {
			t.Fatalf("TypingText(%v) = %q, want %q", tt.users, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	if got := Initials("Dr. Sugandese"); got != "DR" {
		t.Fatalf("got %q", got)
	}
	if got := Initials("x"); got != "X" {
		t.Fatalf("got %q", got)
	}
}

func TestAvatarColorExplicitWins(t *testing.T) {
	if got := AvatarColor("anyone", "#123456"); got != "#123456" {
		t.Fatalf("got %q", got)
	}
}

func TestAvatarColorPaletteByLength(t *testing.T) {
	// 5-rune name lands on palette slot 0
	if got := AvatarColor("aaaaa", ""); got != "#5865F2" {
		t.Fatalf("got %q", got)
	}
	if got := AvatarColor("aaaaaa", ""); got != "#57F287" {
		t.Fatalf("got %q", got)
	}
}

func TestThemeForFallsBackToDark(t *testing.T) {
	if got := ThemeFor("no-such-theme"); got.Background != "#313338" {
		t.Fatalf("unknown theme must fall back to dark, got %q", got.Background)
	}
	if got := ThemeFor("#0A0A0A"); got.Background != "#0A0A0A" {
		t.Fatalf("got %q", got.Background)
	}
}
