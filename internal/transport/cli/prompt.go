package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user abandons the current operation by
// submitting a blank line.
var ErrCancelled = errors.New("cancelled")

// affirmative answers accepted by Confirm.
var yesAnswers = map[string]bool{
	"так": true, "т": true, "yes": true, "y": true, "1": true,
}

// Prompter reads validated user input line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Text prompts for a non-empty line. A blank line cancels the operation.
func (p *Prompter) Text(label string) (string, error) {
	line, err := p.readLine(label)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", ErrCancelled
	}
	return line, nil
}

// ID prompts for a positive integer, re-asking on invalid input. A blank
// line cancels the operation.
func (p *Prompter) ID(label string) (int64, error) {
	for {
		line, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, ErrCancelled
		}

		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintln(p.out, "Потрібне додатне ціле число.")
			continue
		}
		return id, nil
	}
}

// Confirm asks a yes/no question. Only an explicit affirmative answer
// returns true; anything else, including a blank line, is a refusal.
func (p *Prompter) Confirm(label string) (bool, error) {
	line, err := p.readLine(label + " (так/ні)")
	if err != nil {
		return false, err
	}
	return yesAnswers[strings.ToLower(line)], nil
}

// Choice prompts for a menu item number between 0 and max inclusive.
// A blank line is treated as 0 (go back).
func (p *Prompter) Choice(label string, max int) (int, error) {
	for {
		line, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n > max {
			fmt.Fprintf(p.out, "Виберіть число від 0 до %d.\n", max)
			continue
		}
		return n, nil
	}
}
