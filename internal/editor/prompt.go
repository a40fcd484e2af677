package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrNoInput is returned when the prompt source is exhausted.
var ErrNoInput = errors.New("prompt input closed")

// Prompter asks the user a question and returns the answer without the
// line terminator.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// ConsolePrompter asks on a text stream, normally the terminal the editor
// was started from.
type ConsolePrompter struct {
	out io.Writer

	once  sync.Once
	in    io.Reader
	lines chan string
}

// NewConsolePrompter reads answers from in and writes questions to out.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: in, out: out}
}

// start launches the single reader. A read cannot be interrupted, so the
// reader outlives a cancelled Ask and its line goes to the next one.
func (p *ConsolePrompter) start() {
	p.lines = make(chan string)
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			p.lines <- strings.TrimRight(scanner.Text(), "\r")
		}
	}()
}

// Ask writes the question and waits for a line.
func (p *ConsolePrompter) Ask(ctx context.Context, question string) (string, error) {
	p.once.Do(p.start)

	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	select {
	case line, ok := <-p.lines:
		if !ok {
			return "", ErrNoInput
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// confirm asks a yes/no question. Anything starting with y or Y is yes.
func confirm(ctx context.Context, p Prompter, question string) (bool, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y'), nil
}
