package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream ends before an answer is given
var ErrNoInput = errors.New("end of input stream reached; interactive input is required")

// Prompter asks questions on out and reads one answer per line from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prompts until a non-empty answer passes validate. validate may be nil.
func (p *Prompter) Ask(label string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "Enter %s: ", label)
		line, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && (err != io.EOF || answer == "") {
			if err == io.EOF {
				fmt.Fprintln(p.out)
				return "", ErrNoInput
			}
			return "", fmt.Errorf("failed to read answer: %w", err)
		}

		if answer == "" {
			fmt.Fprintln(p.out, "Input cannot be empty. Please try again.")
			continue
		}
		if validate != nil {
			if verr := validate(answer); verr != nil {
				fmt.Fprintf(p.out, "%v. Please try again.\n", verr)
				continue
			}
		}
		return answer, nil
	}
}
