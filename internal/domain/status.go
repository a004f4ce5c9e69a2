package domain

import (
	"fmt"
	"strings"
)

// Status classifies a transaction outcome. The zero value is not a valid status.
type Status int

const (
	StatusProfit Status = iota + 1
	StatusLoss
	StatusBreakEven
)

var statusNames = map[Status]string{
	StatusProfit:    "PROFIT",
	StatusLoss:      "LOSS",
	StatusBreakEven: "BREAK-EVEN",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Valid reports whether s is one of the three known outcomes
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus resolves a canonical status name, case-insensitively
func ParseStatus(name string) (Status, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for s, canonical := range statusNames {
		if canonical == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
