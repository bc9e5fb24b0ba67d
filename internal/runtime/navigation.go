package runtime

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/trackline/pkg/classify"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/validator"
)

const (
	minTrackingLen = 10
	maxTrackingLen = 25
	deadSuffix     = "ZZ"
	inactiveDigits = "000000000"
)

func (e *Engine) greet(domain.State) Result {
	return moveTo(domain.StepAwaitHasTracking, MsgGreeting)
}

func (e *Engine) hasTracking(state domain.State, input string) Result {
	switch input {
	case classify.Yes:
		return moveTo(domain.StepAwaitTrackingNumber, MsgAskTrackingNumber)
	case classify.No:
		return moveTo(domain.StepAwaitAlternateID, MsgAskAlternateID)
	}
	return stay(state, MsgYesOrNo)
}

// trackingNumber checks the raw text in priority order: restart, URL, valid
// format (with its dead-end variants), then the invalid-format diagnostics.
func (e *Engine) trackingNumber(state domain.State, raw string) Result {
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "never mind") || strings.Contains(lower, "cancel") {
		return e.restart()
	}

	if strings.Contains(raw, "http") {
		return stay(state, MsgURL)
	}

	if validator.IsValidTrackingNumber(raw) {
		switch {
		case strings.HasSuffix(raw, deadSuffix):
			return escalate(EscalationNoResults, MsgNoResults)
		case validator.TrackingDigits(raw) == inactiveDigits:
			return escalate(EscalationInactive, MsgInactive)
		}
		return moveTo(domain.StepAwaitDeliveryConfirmation, MsgDelivered)
	}

	next := state
	next.ErrorCount++
	diagnostic := diagnoseTrackingNumber(raw)
	if next.ErrorCount >= e.cfg.MaxTrackingErrors {
		return escalate(EscalationTooManyErrors, diagnostic, MsgTooManyErrors)
	}
	return stay(next, diagnostic)
}

// restart resets the session and runs the Greeting transition in the same turn,
// returning both messages as one ordered batch.
func (e *Engine) restart() Result {
	greeting := e.greet(domain.NewState())
	greeting.Messages = append(say(MsgRestart), greeting.Messages...)
	return greeting
}

func diagnoseTrackingNumber(raw string) string {
	n := utf8.RuneCountInString(raw)
	switch {
	case n < minTrackingLen:
		return MsgTooShort
	case n > maxTrackingLen:
		return MsgTooLong
	case strings.IndexFunc(raw, notAlphanumeric) >= 0:
		return MsgAlphanumericOnly
	}
	return MsgBadFormat
}

func notAlphanumeric(r rune) bool {
	return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
}

func (e *Engine) alternateID(state domain.State, raw string) Result {
	if validator.IsValidEmail(raw) || validator.IsValidOrderNumber(raw) {
		return moveTo(domain.StepDone, MsgFoundAtSorting)
	}
	return escalate(EscalationNotFound, MsgNotFound)
}

func (e *Engine) humanHandoff(state domain.State, input string) Result {
	if input == classify.Yes {
		r := moveTo(domain.StepDone, MsgConnecting)
		r.Messages = append(r.Messages, domain.SayLater(MsgAgentWillCall, e.cfg.HandoffFollowup))
		return r
	}
	return moveTo(domain.StepDone, MsgAnythingElse)
}

func (e *Engine) deliveryConfirmation(state domain.State, input string) Result {
	switch input {
	case classify.Yes:
		return moveTo(domain.StepDone, MsgGladToHear)
	case classify.No:
		return escalate(EscalationNotDelivered, MsgSorryHandoff)
	}
	return stay(state, MsgReceivedYesOrNo)
}
