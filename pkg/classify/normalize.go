package classify

import "strings"

const (
	Yes = "yes"
	No  = "no"
)

var affirmatives = map[string]struct{}{
	"y": {}, "yes": {}, "yeah": {}, "yep": {}, "yess": {},
	"yea": {}, "yup": {}, "ys": {}, "yse": {}, "yesss": {},
}

var negatives = map[string]struct{}{
	"n": {}, "no": {}, "nah": {}, "nope": {},
}

// Normalize lowercases and trims raw input and folds informal yes/no spellings
// into the canonical Yes and No tokens.
func Normalize(raw string) string {
	input := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := affirmatives[input]; ok {
		return Yes
	}
	if _, ok := negatives[input]; ok {
		return No
	}
	return input
}
