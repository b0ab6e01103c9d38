package cut

import (
	"strconv"
	"strings"
)

// ParseSelection turns a selection list such as "1,7,3-5" into a
// PositionList. Positions are 1-indexed and inclusive in the input and
// 0-indexed half-open in the result. Token order is kept as written.
// The first invalid token stops parsing.
func ParseSelection(raw string) (PositionList, error) {
	if raw == "" {
		return nil, &ParseError{Kind: EmptySelection}
	}

	parts := strings.Split(raw, ",")
	positions := make(PositionList, 0, len(parts))

	for _, part := range parts {
		r, err := parseToken(part)
		if err != nil {
			return nil, err
		}
		positions = append(positions, r)
	}

	return positions, nil
}

func parseToken(token string) (Range, error) {
	if token == "" {
		return Range{}, &ParseError{Kind: EmptySelection}
	}

	if n, err := parseIndex(token); err == nil {
		return Range{Start: n - 1, End: n}, nil
	} else if !isRange(token) {
		return Range{}, err
	}

	bounds := strings.Split(token, "-")

	low, err := parseIndex(bounds[0])
	if err != nil {
		return Range{}, err
	}
	high, err := parseIndex(bounds[1])
	if err != nil {
		return Range{}, err
	}

	if low >= high {
		return Range{}, &ParseError{Kind: InvalidRangeOrder, Token: token, Low: low, High: high}
	}

	return Range{Start: low - 1, End: high}, nil
}

// parseIndex parses a 1-indexed position. Only ASCII digits are accepted,
// so signs are rejected while leading zeros are not.
func parseIndex(s string) (int, error) {
	if !isDigits(s) {
		return 0, invalidToken(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, invalidToken(s)
	}
	return n, nil
}

// isRange reports whether s has the shape digits-digits.
func isRange(s string) bool {
	low, high, ok := strings.Cut(s, "-")
	return ok && isDigits(low) && isDigits(high)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
