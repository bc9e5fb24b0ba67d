/*
Package runner drives a trackline conversation from a line-oriented stream.

It is the bridge between a Session and the outside world: an IOHandler reads utterances
and, being a TranscriptSink itself, prints every turn the session appends, including
idle reminders and delayed follow-ups that arrive while the user is still typing.

# Key Components

  - Runner: reads, waits the typing delay, submits, until exit/quit or EOF.
  - TextHandler: interactive terminal usage, optionally rendering bot messages.
  - JSONHandler: newline-delimited JSON for programmatic hosts.

# Usage

	handler := runner.NewTextHandler(os.Stdin, os.Stdout)
	sess, _ := trackline.New(handler)
	defer sess.Close()

	r := runner.NewRunner(runner.WithInputHandler(handler), runner.WithTypingDelay(600*time.Millisecond))
	if err := r.Run(ctx, sess); err != nil {
		log.Fatal(err)
	}
*/
package runner
