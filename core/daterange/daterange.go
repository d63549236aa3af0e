// Package daterange provides a structured calendar-date interval.
// Postgres range literals like "[2026-06-01,2026-09-01)" are parsed once
// at the system boundary; everything downstream consumes the structured form.
package daterange

import (
	"strings"
	"time"

	"rental-pricing/internal/errors"
)

// Range is a calendar-date interval with explicit bound inclusivity.
// A nil bound means the interval is unbounded on that side.
type Range struct {
	// Lower is the lower bound date
	Lower *time.Time `json:"lower,omitempty"`

	// Upper is the upper bound date
	Upper *time.Time `json:"upper,omitempty"`

	// LowerInclusive indicates whether Lower itself is inside the range
	LowerInclusive bool `json:"lower_inclusive"`

	// UpperInclusive indicates whether Upper itself is inside the range
	UpperInclusive bool `json:"upper_inclusive"`
}

// dateLayouts are the boundary formats accepted inside a range literal
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Parse parses a Postgres-style range literal into a Range.
// Bounds may be empty or "-" for unbounded sides.
func Parse(s string) (Range, error) {
	if s == "" {
		return Range{LowerInclusive: true}, nil
	}

	if len(s) < 2 {
		return Range{}, errors.Newf(errors.TypeParsing, "malformed range literal: %q", s)
	}

	first, last := s[0], s[len(s)-1]
	if (first != '[' && first != '(') || (last != ']' && last != ')') {
		return Range{}, errors.Newf(errors.TypeParsing, "range literal must be bracketed: %q", s)
	}

	inner := s[1 : len(s)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return Range{}, errors.Newf(errors.TypeParsing, "range literal must have exactly two bounds: %q", s)
	}

	lower, err := parseBoundary(parts[0])
	if err != nil {
		return Range{}, errors.Wrapf(errors.TypeParsing, err, "invalid lower bound in %q", s)
	}
	upper, err := parseBoundary(parts[1])
	if err != nil {
		return Range{}, errors.Wrapf(errors.TypeParsing, err, "invalid upper bound in %q", s)
	}

	return Range{
		Lower:          lower,
		Upper:          upper,
		LowerInclusive: first == '[',
		UpperInclusive: last == ']',
	}, nil
}

func parseBoundary(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" {
		return nil, nil
	}

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Contains reports whether t falls inside the range.
// A range with no bounds on either side matches nothing.
func (r Range) Contains(t time.Time) bool {
	if r.Lower == nil && r.Upper == nil {
		return false
	}

	if r.Lower != nil {
		if r.LowerInclusive {
			if t.Before(*r.Lower) {
				return false
			}
		} else if !t.After(*r.Lower) {
			return false
		}
	}

	if r.Upper != nil {
		if r.UpperInclusive {
			if t.After(*r.Upper) {
				return false
			}
		} else if !t.Before(*r.Upper) {
			return false
		}
	}

	return true
}
