package domain

import "errors"

// ErrSessionClosed is returned when a turn is submitted to a closed session.
var ErrSessionClosed = errors.New("session closed")

// ErrUnknownStep is returned when decoding a step name that is not part of the dialogue.
var ErrUnknownStep = errors.New("unknown step")

// ErrInputTooLarge is returned when an utterance exceeds the configured size limit.
var ErrInputTooLarge = errors.New("input exceeds maximum allowed size")

// ErrInvalidUTF8 is returned when an utterance is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input contains invalid UTF-8 sequences")
