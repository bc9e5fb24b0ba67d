package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pictographic block checked by IsEmoji.
const (
	emojiFirst = '\U0001F300'
	emojiLast  = '\U0001FAFF'
)

// EmojiOnlyMaxLen is the longest utterance (in runes) treated as emoji-only.
const EmojiOnlyMaxLen = 3

var profanity = []string{"damn", "shit", "fuck", "crap", "bitch", "asshole"}

var standaloneAnd = regexp.MustCompile(`\band\b`)

// IsEmoji reports whether text contains any pictographic code point.
func IsEmoji(text string) bool {
	for _, r := range text {
		if r >= emojiFirst && r <= emojiLast {
			return true
		}
	}
	return false
}

// IsUnsupportedLanguage flags non-ASCII text that is not explained by emoji.
func IsUnsupportedLanguage(text string) bool {
	return hasNonASCII(text) && !IsEmoji(text)
}

// IsEmojiOnly reports short utterances made of emoji rather than words.
func IsEmojiOnly(text string) bool {
	return IsEmoji(text) && utf8.RuneCountInString(text) <= EmojiOnlyMaxLen
}

// IsMultiQuestion flags compound requests: more than one '?' or the word "and".
func IsMultiQuestion(text string) bool {
	return strings.Count(text, "?") > 1 || standaloneAnd.MatchString(text)
}

// IsRude flags shouting or profanity. It expects the raw, un-normalized text
// because casing is part of the signal.
func IsRude(raw string) bool {
	if isShouting(raw) {
		return true
	}
	lower := strings.ToLower(raw)
	for _, word := range profanity {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// isShouting is true for text longer than 3 runes with no lowercase letters
// where letters outnumber digits. The digit rule keeps identifiers such as
// AB123456789CD from reading as shouting.
func isShouting(text string) bool {
	if utf8.RuneCountInString(text) <= 3 {
		return false
	}
	letters, digits := 0, 0
	for _, r := range text {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	return letters > 0 && letters > digits
}

func hasNonASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] > unicode.MaxASCII {
			return true
		}
	}
	return false
}
