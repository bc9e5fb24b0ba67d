/*
Package trackline is a turn-based conversational assistant that walks a user through
finding a lost package.

Every utterance goes through a fixed pipeline: it is normalized, checked by the
conversational guards (empty, non-English, emoji-only, multi-question, rude), and then
handed to the step-indexed dialogue state machine, which validates tracking numbers,
order numbers and emails, asks follow-up questions and escalates to a human agent after
repeated failures. An idle reminder is re-armed on every turn.

# Concept

The dialogue engine itself is a pure reducer, (State, input) -> (State, Messages). A
Session wraps it with the things that need time and I/O: it serialises turns, echoes
them into a Transcript Sink, and schedules the idle reminder and the handoff follow-up
through a Scheduler. Hosts (terminal, NDJSON, HTTP) drive a Session through the
ports.Conversation interface.

# Usage

	transcript := memory.NewTranscript()
	sess, err := trackline.New(transcript, trackline.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	ctx := context.Background()
	if _, err := sess.Start(ctx); err != nil { // "Hi! ... Do you have a tracking number?"
		log.Fatal(err)
	}
	reply, err := sess.Submit(ctx, "yes")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reply.State.Step) // await_tracking_number
*/
package trackline
