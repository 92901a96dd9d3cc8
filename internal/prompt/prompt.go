// Package prompt reads interactive answers from a line-oriented input stream.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ParseNumber for input that is not an integer.
var ErrNotANumber = errors.New("not a number")

// InvalidNumberMessage is printed before re-prompting for a number.
const InvalidNumberMessage = "Invalid input. Please enter a number."

// Prompter writes prompts to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints label and returns the next input line without its terminator.
// A final line without a newline is returned as-is; io.EOF is returned only
// when no more input is available.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// Number prompts until the answer parses as an integer.
// It returns the number as typed; callers convert to an index.
func (p *Prompter) Number(label string) (int, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := ParseNumber(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, InvalidNumberMessage)
	}
}

// ParseNumber parses a base-10 integer surrounded by optional whitespace.
// A leading sign is accepted, matching what users may type.
func ParseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
