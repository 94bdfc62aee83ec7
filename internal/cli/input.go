package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers from a command's input
type Prompter struct {
	in  io.Reader
	r   *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading in and prompting on out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, r: bufio.NewReader(in), out: out}
}

// Line prints a prompt and reads one trimmed line. EOF after partial input
// returns the partial line.
func (p *Prompter) Line(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return "", err
		}
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Password reads a secret without echo when input is a terminal, and as a
// plain line otherwise
func (p *Prompter) Password(prompt string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.Line(prompt)
	}

	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	pw, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Confirm asks a yes/no question, defaulting to no
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Line(prompt + " [y/N] ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Lines streams the remaining input line by line. The channel closes on EOF
// or once done is closed; a read already blocked on input still has to
// return first.
func (p *Prompter) Lines(done <-chan struct{}) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for {
			select {
			case <-done:
				return
			default:
			}

			line, err := p.r.ReadString('\n')
			if len(line) > 0 || err == nil {
				select {
				case ch <- strings.TrimSpace(line):
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
