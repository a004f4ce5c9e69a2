// Package console runs the numbered text menus of the two calculators.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/counterdesk/calculators/internal/domain"
	"github.com/counterdesk/calculators/pkg/decimal"
)

const (
	maxLineBytes   = 64 * 1024
	msgLineTooLong = "Input line too long."
)

// prompter writes a label and reads one line of answer.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{reader: bufio.NewReader(in), out: out}
}

// ask returns io.EOF once input is exhausted. A line longer than maxLineBytes
// is consumed in full and reported as a ValidationError.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := p.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			if line == nil && !tooLong {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if tooLong || len(line)+len(chunk) > maxLineBytes {
			tooLong, line = true, nil
		} else {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", &domain.ValidationError{Field: "input", Message: msgLineTooLong}
	}
	return strings.TrimRight(string(line), "\r"), nil
}

func (p *prompter) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// parseMoneyField turns text into an amount; any parse failure becomes a
// ValidationError carrying message.
func parseMoneyField(text, field, message string) (decimal.Money, error) {
	m, err := decimal.ParseMoney(text)
	if err != nil {
		return decimal.Money{}, &domain.ValidationError{Field: field, Message: message}
	}
	return m, nil
}

func parseQuantity(text, field, message string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Message: message}
	}
	return q, nil
}

// parseYesNo treats "Y" in any case as yes and everything else as no.
func parseYesNo(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "y")
}

// report prints user-facing errors and passes anything else through.
func (p *prompter) report(err error) error {
	var verr *domain.ValidationError
	var eerr *domain.EmptyStateError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		p.println(verr.Message)
		return nil
	case errors.As(err, &eerr):
		p.println(eerr.Error())
		return nil
	default:
		return err
	}
}
