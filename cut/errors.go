package cut

import (
	"errors"
	"fmt"
)

// ErrorKind classifies selection parse failures.
type ErrorKind int

const (
	InvalidToken ErrorKind = iota + 1
	InvalidRangeOrder
	EmptySelection
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "invalid token"
	case InvalidRangeOrder:
		return "invalid range order"
	case EmptySelection:
		return "empty selection"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against a *ParseError.
var (
	ErrInvalidToken      = errors.New("illegal list value")
	ErrInvalidRangeOrder = errors.New("range bounds out of order")
	ErrEmptySelection    = errors.New("empty selection")
)

// ParseError reports the first invalid token of a selection string.
type ParseError struct {
	Kind ErrorKind
	// Token is the offending token, or the offending side of a range.
	Token string
	// Low and High are the 1-indexed bounds of an out-of-order range.
	Low  int
	High int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidRangeOrder:
		return fmt.Sprintf("First number in range (%d) must be lower than second number (%d)", e.Low, e.High)
	default:
		return fmt.Sprintf("illegal list value: \"%s\"", e.Token)
	}
}

func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrInvalidToken:
		return e.Kind == InvalidToken
	case ErrInvalidRangeOrder:
		return e.Kind == InvalidRangeOrder
	case ErrEmptySelection:
		return e.Kind == EmptySelection
	}
	return false
}

func invalidToken(token string) error {
	return &ParseError{Kind: InvalidToken, Token: token}
}
