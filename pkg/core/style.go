package core

import (
	"fmt"
	"strings"
)

// Style is the cylinder layout family.
type Style int

// Layout styles.
const (
	// StyleInline places every cylinder in a single bank.
	StyleInline Style = iota
	// StyleV splits cylinders across a left and a right bank.
	StyleV
)

// MinCylinders returns the smallest cylinder count the style supports.
func (s Style) MinCylinders() int {
	if s == StyleV {
		return 4
	}
	return 2
}

// String returns the canonical token for the style.
func (s Style) String() string {
	switch s {
	case StyleInline:
		return "inline"
	case StyleV:
		return "v"
	default:
		return "unknown"
	}
}

// ParseStyle converts a layout token to a Style.
// Accepted tokens are case-insensitive: inline, i, straight, v, vee.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline", "i", "straight":
		return StyleInline, nil
	case "v", "vee":
		return StyleV, nil
	default:
		return StyleInline, fmt.Errorf("%w: %q (expected inline or v)", ErrInvalidLayoutStyle, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// TieBreak decides which bank receives the unmatched trailing cylinder of
// an odd-count V layout when both banks hold the same number of cylinders.
type TieBreak int

// Tie-break policies.
const (
	// TieBreakRight gives the leftover cylinder to the right bank.
	TieBreakRight TieBreak = iota
	// TieBreakLeft gives the leftover cylinder to the left bank.
	TieBreakLeft
)

// String returns the canonical token for the policy.
func (t TieBreak) String() string {
	if t == TieBreakLeft {
		return "left"
	}
	return "right"
}

// ParseTieBreak converts a policy token to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return TieBreakRight, nil
	case "left":
		return TieBreakLeft, nil
	default:
		return TieBreakRight, fmt.Errorf("invalid tie-break policy %q (expected right or left)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TieBreak) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TieBreak) UnmarshalText(text []byte) error {
	v, err := ParseTieBreak(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
