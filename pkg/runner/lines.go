package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type lineResult struct {
	text string
	err  error
}

// lineReader reads lines on a background goroutine so Input can honour
// context cancellation while the underlying Read blocks.
type lineReader struct {
	reader *bufio.Reader
	ch     chan lineResult
	once   sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

func (l *lineReader) pump() {
	for {
		text, err := l.reader.ReadString('\n')

		// A final line without a newline still counts.
		if text != "" {
			l.ch <- lineResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				l.ch <- lineResult{err: err}
			}
			close(l.ch)
			return
		}
	}
}

// next returns the next raw line (newline included), io.EOF at the end of the
// stream, or the context error.
func (l *lineReader) next(ctx context.Context) (string, error) {
	l.once.Do(func() {
		l.ch = make(chan lineResult)
		go l.pump()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-l.ch:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
