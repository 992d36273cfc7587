// Package prompt implements line-oriented question and answer over a pair of
// streams, which is all the terminal interaction the calculator needs.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineLength is the longest answer, in bytes, that Ask accepts.
const MaxLineLength = 4096

// ErrLineTooLong is returned by Ask for an answer longer than MaxLineLength.
// The rest of that line has already been discarded, so the next Ask reads
// the following line.
var ErrLineTooLong = errors.New("input line too long")

// Prompter writes questions to an output stream and reads one answer line
// per question from an input stream.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask writes question and returns the next input line without its line
// terminator. It returns io.EOF once the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.readLine()
	if errors.Is(err, io.EOF) {
		// Keep the transcript tidy when input ends mid-prompt.
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r"), nil
}

// readLine returns the next line without its terminator. A line over
// MaxLineLength is consumed to its end and reported as ErrLineTooLong.
func (p *Prompter) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := p.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		if !tooLong {
			if len(line)+len(chunk) > MaxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return string(line), nil
}

// Confirm asks a yes/no question. Only "yes" (any case, surrounding
// whitespace ignored) counts as agreement; an overlong answer does not.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if errors.Is(err, ErrLineTooLong) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

// Println writes a line to the output stream.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text to the output stream.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}
