/*
Package ports defines the driven ports (interfaces) of the package-tracking assistant.

These interfaces decouple the session from its hosts, so the same conversation can be
rendered to a terminal, streamed over HTTP or mirrored into Redis.

# Key Interfaces

  - TranscriptSink: accepts turns in order and appends them to a transcript.
  - TranscriptReader: reads back what a sink has accepted (used by hosts and contract tests).
  - Conversation: the Input Source side, implemented by the session and driven by hosts.
*/
package ports
