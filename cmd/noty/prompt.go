package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter asks yes/no questions on a line-oriented terminal.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// Confirm repeats question until the answer is y, yes, n, no or empty.
// Empty input and end of input mean no.
func (p *prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprint(p.out, question)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return false, fmt.Errorf("reading answer: %w", err)
			}
			fmt.Fprintln(p.out)
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please enter 'y' for yes or 'n' for no.")
		}
	}
}
