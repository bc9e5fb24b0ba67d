package domain

// Guard names the conversational check that short-circuited a turn.
type Guard string

const (
	GuardNone                Guard = ""
	GuardEmpty               Guard = "empty"
	GuardUnsupportedLanguage Guard = "unsupported_language"
	GuardEmojiOnly           Guard = "emoji_only"
	GuardMultiQuestion       Guard = "multi_question"
	GuardRude                Guard = "rude"
)

// Guards lists the guards in evaluation order.
var Guards = []Guard{
	GuardEmpty,
	GuardUnsupportedLanguage,
	GuardEmojiOnly,
	GuardMultiQuestion,
	GuardRude,
}
