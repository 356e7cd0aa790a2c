package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/cancelreader"
)

// MaxLineLength bounds a console line. Longer lines are discarded.
const MaxLineLength = 4096

var (
	// ErrConsoleClosed is returned by ReadLine after Cancel or at end of input.
	ErrConsoleClosed = errors.New("console closed")
	// ErrLineTooLong is returned for a line over MaxLineLength. The line is
	// consumed, so the next ReadLine starts on the following one.
	ErrLineTooLong = errors.New("console line too long")
)

// ConsoleAdapter reads learner commands one line at a time.
type ConsoleAdapter interface {
	// ReadLine blocks until a full line is available and returns it without
	// the line terminator. It returns ErrConsoleClosed once input ends or the
	// reader is canceled.
	ReadLine() (string, error)
	// Cancel unblocks a pending ReadLine. It is safe to call more than once.
	Cancel()
}

// CancelableConsoleAdapter wraps an input stream in a cancelreader so that
// shutdown can interrupt a blocked read.
type CancelableConsoleAdapter struct {
	reader cancelreader.CancelReader
	buf    *bufio.Reader
	once   sync.Once
}

// NewCancelableConsoleAdapter wraps in (usually os.Stdin).
func NewCancelableConsoleAdapter(in io.Reader) (*CancelableConsoleAdapter, error) {
	reader, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("open console: %w", err)
	}

	return &CancelableConsoleAdapter{
		reader: reader,
		buf:    bufio.NewReader(reader),
	}, nil
}

// ReadLine returns the next line without its terminator.
func (a *CancelableConsoleAdapter) ReadLine() (string, error) {
	var (
		line    strings.Builder
		dropped bool
	)

	for {
		chunk, isPrefix, err := a.buf.ReadLine()
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) || errors.Is(err, io.EOF) {
				return "", ErrConsoleClosed
			}

			return "", err
		}

		if line.Len()+len(chunk) > MaxLineLength {
			dropped = true
		}

		if !dropped {
			line.Write(chunk)
		}

		if isPrefix {
			continue
		}

		if dropped {
			return "", fmt.Errorf("%w: over %d bytes", ErrLineTooLong, MaxLineLength)
		}

		return line.String(), nil
	}
}

// Cancel interrupts a blocked ReadLine and releases the reader.
func (a *CancelableConsoleAdapter) Cancel() {
	a.once.Do(func() {
		a.reader.Cancel()
		_ = a.reader.Close()
	})
}
