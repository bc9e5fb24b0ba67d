/*
Package domain contains the core domain models of the package-tracking assistant.

It defines the fundamental entities of the dialogue state machine: the Step enumeration,
the per-session State, the Turns appended to a transcript and the outgoing Messages the
engine asks the host to deliver. This package is kept pure and free of I/O, timers and
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Step: a node of the fixed dialogue graph (Greeting ... Done).
  - State: the runtime snapshot of the session (current Step and tracking error count).
  - Turn: an immutable (speaker, text) pair as seen by a Transcript Sink.
  - Message: a bot message produced by a transition, either immediate or delayed.
  - Guard: the conversational check that short-circuited a turn, if any.
*/
package domain
