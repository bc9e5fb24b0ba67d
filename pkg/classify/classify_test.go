package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmoji(t *testing.T) {
	assert.True(t, IsEmoji("📦"))
	assert.True(t, IsEmoji("where is it 🙂"))
	assert.True(t, IsEmoji("🫠")) // U+1FAE0, top of the block
	assert.False(t, IsEmoji("hello"))
	assert.False(t, IsEmoji("☺")) // U+263A, outside the pictographic block
	assert.False(t, IsEmoji(""))
}

func TestIsUnsupportedLanguage(t *testing.T) {
	assert.True(t, IsUnsupportedLanguage("¿dónde está mi paquete"))
	assert.True(t, IsUnsupportedLanguage("我的包裹在哪里"))
	assert.False(t, IsUnsupportedLanguage("where is my package"))
	assert.False(t, IsUnsupportedLanguage("📦📦"), "pure emoji is not double flagged")
	assert.False(t, IsUnsupportedLanguage(""))
}

func TestIsEmojiOnly(t *testing.T) {
	assert.True(t, IsEmojiOnly("😡"))
	assert.True(t, IsEmojiOnly("👍👍👍"))
	assert.False(t, IsEmojiOnly("👍👍👍👍"))
	assert.False(t, IsEmojiOnly("ok"))
}

func TestIsMultiQuestion(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"where is it?", false},
		{"where is it?? when will it come?", true},
		{"where is it? who has it?", true},
		{"track and trace", true},
		{"and", true},
		{"andrew sent it", false},
		{"sandy", false},
		{"yes", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMultiQuestion(tt.in), "input %q", tt.in)
	}
}

func TestIsRude(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"WHERE IS MY PACKAGE", true},
		{"HELP", true},
		{"YES", false},
		{"OK!", false},
		{"this is crap", true},
		{"Damn it", true},
		{"where is my package", false},
		{"AB123456789CD", false},
		{"123456789", false},
		{"1234", false},
		{"Hello There", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRude(tt.in), "input %q", tt.in)
	}
}
