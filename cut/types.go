package cut

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open interval [Start, End) over 0-indexed positions.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of positions covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// clip bounds the range to [0, n) and reports whether anything is left.
func (r Range) clip(n int) (int, int, bool) {
	if r.Start >= n {
		return 0, 0, false
	}
	return r.Start, min(r.End, n), true
}

// PositionList keeps ranges in the order they were written.
type PositionList []Range

// String renders the list back into 1-indexed selection syntax.
func (p PositionList) String() string {
	parts := make([]string, 0, len(p))
	for _, r := range p {
		if r.Len() == 1 {
			parts = append(parts, strconv.Itoa(r.End))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d-%d", r.Start+1, r.End))
	}
	return strings.Join(parts, ",")
}

// ModeKind names what a position list is applied to.
type ModeKind int

const (
	KindFields ModeKind = iota
	KindBytes
	KindChars
)

func (k ModeKind) String() string {
	switch k {
	case KindFields:
		return "fields"
	case KindBytes:
		return "bytes"
	case KindChars:
		return "chars"
	default:
		return "unknown"
	}
}

// ParseModeKind maps a mode name ("fields", "bytes", "chars" or their
// single-letter flags) to a ModeKind.
func ParseModeKind(s string) (ModeKind, error) {
	switch strings.ToLower(s) {
	case "fields", "f":
		return KindFields, nil
	case "bytes", "b":
		return KindBytes, nil
	case "chars", "characters", "c":
		return KindChars, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// DefaultDelimiter is used in fields mode when none is given.
const DefaultDelimiter byte = '\t'

// Mode is the extraction mode. Build it with Fields, Bytes or Chars.
type Mode struct {
	kind  ModeKind
	delim byte
}

// Fields selects delimiter-separated fields.
func Fields(delim byte) Mode {
	return Mode{kind: KindFields, delim: delim}
}

// Bytes selects raw bytes.
func Bytes() Mode {
	return Mode{kind: KindBytes}
}

// Chars selects Unicode scalar values.
func Chars() Mode {
	return Mode{kind: KindChars}
}

func (m Mode) Kind() ModeKind {
	return m.kind
}

// Delimiter returns the field delimiter. It is zero outside fields mode.
func (m Mode) Delimiter() byte {
	return m.delim
}

func (m Mode) String() string {
	if m.kind == KindFields {
		return fmt.Sprintf("fields(%q)", m.delim)
	}
	return m.kind.String()
}

// Request is a validated extraction request as produced by a front end.
type Request struct {
	Kind          ModeKind
	Delimiter     byte
	List          string
	Files         []string
	OnlyDelimited bool
}

// Mode builds the extraction mode for the request.
func (r Request) Mode() Mode {
	switch r.Kind {
	case KindBytes:
		return Bytes()
	case KindChars:
		return Chars()
	default:
		delim := r.Delimiter
		if delim == 0 {
			delim = DefaultDelimiter
		}
		return Fields(delim)
	}
}

// Extractor parses the request's selection list and returns an extractor
// configured with it.
func (r Request) Extractor() (*Extractor, error) {
	positions, err := ParseSelection(r.List)
	if err != nil {
		return nil, err
	}
	return NewExtractor(r.Mode(), positions), nil
}
