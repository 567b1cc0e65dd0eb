package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter reads operator input from a terminal-style stream. Tests swap the
// reader for a scripted buffer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdinPrompter returns a prompter bound to the process terminal.
func NewStdinPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// PromptString prompts for a string value with a default.
func (p *Prompter) PromptString(prompt, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}

	input, err := p.in.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	// Trim whitespace to handle copy-paste issues
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultValue
	}

	return input
}

// PromptBool prompts for a yes/no answer with a default.
func (p *Prompter) PromptBool(prompt string, defaultValue bool) bool {
	for {
		if defaultValue {
			fmt.Fprintf(p.out, "%s [Y/n]: ", prompt)
		} else {
			fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
		}

		input, err := p.in.ReadString('\n')
		if err != nil {
			return defaultValue
		}

		input = strings.TrimSpace(strings.ToLower(input))

		if input == "" {
			return defaultValue
		}

		switch input {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Fprintf(p.out, "Please enter 'y' or 'n'.\n")
		}
	}
}

// PromptChoice prompts for a numeric choice between min and max.
func (p *Prompter) PromptChoice(min, max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "Choose [%d-%d]: ", min, max)

		input, err := p.in.ReadString('\n')
		if err != nil {
			return 0, err
		}

		input = strings.TrimSpace(input)

		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a valid number.\n")
			continue
		}

		if choice < min || choice > max {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}

		return choice, nil
	}
}
