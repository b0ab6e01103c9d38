package cut

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Extractor applies a PositionList to one line at a time. It holds no
// per-line state and is safe for concurrent use.
type Extractor struct {
	mode      Mode
	positions PositionList
}

// NewExtractor returns an extractor for the given mode and positions.
func NewExtractor(mode Mode, positions PositionList) *Extractor {
	return &Extractor{mode: mode, positions: positions}
}

func (e *Extractor) Mode() Mode {
	return e.mode
}

func (e *Extractor) Positions() PositionList {
	return e.positions
}

// Extract returns the selected part of line. Ranges past the end of the
// line are clipped and contribute nothing.
func (e *Extractor) Extract(line string) string {
	switch e.mode.kind {
	case KindBytes:
		return decodeLossy(e.extractBytes([]byte(line)))
	case KindChars:
		return e.extractChars(line)
	default:
		return e.extractFields(line)
	}
}

// ExtractBytes is Extract over a raw line. In bytes mode the selected
// bytes are returned as is, without UTF-8 repair.
func (e *Extractor) ExtractBytes(line []byte) []byte {
	if e.mode.kind == KindBytes {
		return e.extractBytes(line)
	}
	return []byte(e.Extract(string(line)))
}

// Delimited reports whether line contains the field delimiter. Outside
// fields mode every line counts as delimited.
func (e *Extractor) Delimited(line string) bool {
	if e.mode.kind != KindFields {
		return true
	}
	return strings.IndexByte(line, e.mode.delim) >= 0
}

func (e *Extractor) extractFields(line string) string {
	delim := string([]byte{e.mode.delim})
	fields := strings.Split(line, delim)

	var selected []string
	for _, r := range e.positions {
		start, end, ok := r.clip(len(fields))
		if !ok {
			continue
		}
		selected = append(selected, fields[start:end]...)
	}

	return strings.Join(selected, delim)
}

func (e *Extractor) extractBytes(line []byte) []byte {
	var buf bytes.Buffer
	for _, r := range e.positions {
		start, end, ok := r.clip(len(line))
		if !ok {
			continue
		}
		buf.Write(line[start:end])
	}
	return buf.Bytes()
}

func (e *Extractor) extractChars(line string) string {
	runes := []rune(line)

	var sb strings.Builder
	for _, r := range e.positions {
		start, end, ok := r.clip(len(runes))
		if !ok {
			continue
		}
		sb.WriteString(string(runes[start:end]))
	}
	return sb.String()
}

// decodeLossy replaces invalid UTF-8 left by a byte cut with U+FFFD.
func decodeLossy(b []byte) string {
	// the UTF-8 decoder substitutes ill-formed input rather than failing
	s, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return string(s)
}
