package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flarebyte/initials/internal/acronym"
)

const (
	// Label is written before reading the sentence, without a newline.
	Label = "Enter a sentence: "
	// ResultPrefix starts the single output line.
	ResultPrefix = "First letters: "
)

// ErrNoInput is returned when the input ends before a line is available.
var ErrNoInput = errors.New("no input: end of stream")

// Run prompts on out, reads one line from in and prints its acronym.
// If in is an io.Closer it is closed before Run returns.
func Run(in io.Reader, out io.Writer) (err error) {
	if c, ok := in.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close input: %w", cerr)
			}
		}()
	}
	if _, err := io.WriteString(out, Label); err != nil {
		return err
	}
	line, err := ReadLine(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s%s\n", ResultPrefix, acronym.Extract(line))
	return err
}

// ReadLine reads up to, and not including, the next line terminator
// ("\n" or "\r\n"). A final line without a terminator is returned as is.
func ReadLine(in io.Reader) (string, error) {
	r := bufio.NewReader(in)
	line, err := r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
