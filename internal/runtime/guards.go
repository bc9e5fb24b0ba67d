package runtime

import (
	"github.com/aretw0/trackline/pkg/classify"
	"github.com/aretw0/trackline/pkg/domain"
)

// checkGuards applies the conversational guards in priority order.
// input is the normalized text; raw keeps the user's casing for the rudeness check.
func checkGuards(state domain.State, raw, input string) (domain.Guard, string) {
	switch {
	case input == "" && state.Step != domain.StepGreeting:
		return domain.GuardEmpty, MsgDidNotCatch
	case classify.IsUnsupportedLanguage(input):
		return domain.GuardUnsupportedLanguage, MsgEnglishOnly
	case classify.IsEmojiOnly(input):
		return domain.GuardEmojiOnly, MsgUseWords
	case classify.IsMultiQuestion(input):
		return domain.GuardMultiQuestion, MsgOneQuestion
	case classify.IsRude(raw):
		return domain.GuardRude, MsgDeescalate
	}
	return domain.GuardNone, ""
}
