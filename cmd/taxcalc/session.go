package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/homier/blobtable/internal/months"
	"github.com/homier/blobtable/internal/tax"
)

// Longest month input kept, like a %20s scan.
const maxMonthLen = 20

// session runs the interactive calculation loop over line-based input.
type session struct {
	in        *bufio.Scanner
	out       io.Writer
	validator *months.Validator
	cfg       tax.Config
}

func newSession(in io.Reader, out io.Writer, validator *months.Validator, cfg tax.Config) *session {
	return &session{
		in:        bufio.NewScanner(in),
		out:       out,
		validator: validator,
		cfg:       cfg,
	}
}

// run loops until the user declines another calculation. Running out of
// input ends the session without error.
func (s *session) run() error {
	for {
		if err := s.calculateOnce(); err != nil {
			return ignoreEOF(err)
		}

		again, err := s.askAgain()
		if err != nil || !again {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func (s *session) calculateOnce() error {
	month, err := s.readMonth()
	if err != nil {
		return err
	}
	year, err := s.readYear()
	if err != nil {
		return err
	}
	total, err := s.readTotal()
	if err != nil {
		return err
	}

	return tax.Calculate(s.cfg, total).Write(s.out, s.cfg, month, year)
}

// prompt writes p and returns the first word of the next line.
func (s *session) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		fmt.Fprintln(s.out)
		return "", io.EOF
	}

	fields := strings.Fields(s.in.Text())
	if len(fields) == 0 {
		return "", nil
	}

	return fields[0], nil
}

func (s *session) readMonth() (string, error) {
	for {
		month, err := s.prompt("Enter the month: ")
		if err != nil {
			return "", err
		}
		if len(month) > maxMonthLen {
			month = month[:maxMonthLen]
		}

		if s.validator.Valid(month) {
			return month, nil
		}

		fmt.Fprintf(s.out, "Error: '%s' is not a valid month. Did you mean '%s'?\n", month, s.validator.Suggest(month))
	}
}

func (s *session) readYear() (int, error) {
	for {
		word, err := s.prompt("Enter the year: ")
		if err != nil {
			return 0, err
		}

		if year, err := strconv.Atoi(word); err == nil {
			return year, nil
		}

		fmt.Fprintln(s.out, "Error: invalid year input.")
	}
}

func (s *session) readTotal() (float64, error) {
	for {
		word, err := s.prompt("Enter the total: ")
		if err != nil {
			return 0, err
		}

		total, err := strconv.ParseFloat(word, 64)
		switch {
		case err != nil:
			fmt.Fprintln(s.out, "Error: invalid total.")
		case !s.cfg.Fits(total):
			fmt.Fprintln(s.out, "Error: total too large.")
		default:
			return total, nil
		}
	}
}

func (s *session) askAgain() (bool, error) {
	for {
		word, err := s.prompt("Do you wish to perform another calculation? (Y/N): ")
		if err != nil {
			return false, err
		}

		r, _ := utf8.DecodeRuneInString(word)
		switch unicode.ToUpper(r) {
		case 'Y':
			return true, nil
		case 'N':
			return false, nil
		}

		if word == "" {
			r = ' '
		}
		fmt.Fprintf(s.out, "Error: '%c' is not a valid character\n", r)
	}
}
