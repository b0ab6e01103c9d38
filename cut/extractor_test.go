package cut

import (
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, list string) PositionList {
	t.Helper()
	positions, err := ParseSelection(list)
	require.NoError(t, err)
	return positions
}

func TestExtractor_Fields(t *testing.T) {
	tests := []struct {
		name  string
		delim byte
		list  string
		line  string
		want  string
	}{
		{"pick two", ',', "1,3", "a,b,c,d", "a,c"},
		{"range", ',', "2-3", "a,b,c,d", "b,c"},
		{"order kept", ',', "3,1", "a,b,c", "c,a"},
		{"overlap repeats fields", ',', "1-2,2", "a,b,c", "a,b,b"},
		{"range past end clipped", ',', "2-10", "a,b,c", "b,c"},
		{"range fully past end", ',', "5-10", "a,b,c", ""},
		{"mixed in and out of range", ',', "1,9", "a,b,c", "a"},
		{"tab default", '\t', "2", "name\tage\tcity", "age"},
		{"no delimiter in line", ',', "1", "plain", "plain"},
		{"no delimiter second field", ',', "2", "plain", ""},
		{"empty fields kept", ',', "2,3", "a,,c", ",c"},
		{"no trimming", ',', "2", "a, b ,c", " b "},
		{"quotes ignored", ',', "2", `"a,b",c`, `b"`},
		{"empty line", ',', "1", "", ""},
		{"high byte delimiter", 0xff, "1", "a\xffb", "a"},
		{"high byte delimiter rejoined", 0xa7, "3,1", "a\xa7b\xa7c", "c\xa7a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(Fields(tt.delim), mustParse(t, tt.list))
			assert.Equal(t, tt.want, e.Extract(tt.line))
		})
	}
}

func TestExtractor_Bytes(t *testing.T) {
	tests := []struct {
		name string
		list string
		line string
		want string
	}{
		{"prefix", "1-3", "abcdef", "abc"},
		{"order kept", "5,1-2", "abcdef", "eab"},
		{"clipped", "4-100", "abcdef", "def"},
		{"past end", "10", "abcdef", ""},
		{"whole multibyte", "1-2", "éa", "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(Bytes(), mustParse(t, tt.list))
			assert.Equal(t, tt.want, e.Extract(tt.line))
		})
	}
}

func TestExtractor_BytesSplitsRune(t *testing.T) {
	e := NewExtractor(Bytes(), mustParse(t, "1"))

	got := e.Extract("éa")
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "\uFFFD", got)

	raw := e.ExtractBytes([]byte("éa"))
	assert.Equal(t, []byte{0xc3}, raw)
}

func TestExtractor_Chars(t *testing.T) {
	tests := []struct {
		name string
		list string
		line string
		want string
	}{
		{"ascii", "1-3", "abcdef", "abc"},
		{"multibyte whole", "1", "éa", "é"},
		{"multibyte range", "2-3", "aéb", "éb"},
		{"cyrillic", "1,3", "пятак", "пт"},
		{"clipped", "4-10", "пятак", "ак"},
		{"past end", "9", "пятак", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(Chars(), mustParse(t, tt.list))
			got := e.Extract(tt.line)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.NotContains(t, got, "\uFFFD")
		})
	}
}

func TestExtractor_Idempotent(t *testing.T) {
	e := NewExtractor(Fields(','), mustParse(t, "3,1-2"))
	first := e.Extract("a,b,c,d")
	second := e.Extract("a,b,c,d")
	assert.Equal(t, first, second)
	assert.Equal(t, PositionList{{2, 3}, {0, 2}}, e.Positions())
}

func TestExtractor_Concurrent(t *testing.T) {
	e := NewExtractor(Chars(), mustParse(t, "2-4"))

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Extract("abcdef")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "bcd", got)
	}
}

func TestExtractor_Delimited(t *testing.T) {
	fields := NewExtractor(Fields(','), mustParse(t, "1"))
	assert.True(t, fields.Delimited("a,b"))
	assert.False(t, fields.Delimited("ab"))

	highByte := NewExtractor(Fields(0xff), mustParse(t, "1"))
	assert.True(t, highByte.Delimited("a\xffb"))
	assert.False(t, highByte.Delimited("aÿb"))

	bytesMode := NewExtractor(Bytes(), mustParse(t, "1"))
	assert.True(t, bytesMode.Delimited("ab"))
}

func TestExtractor_ExtractBytesOtherModes(t *testing.T) {
	e := NewExtractor(Fields(':'), mustParse(t, "2"))
	assert.Equal(t, []byte("b"), e.ExtractBytes([]byte("a:b:c")))
}

func TestRequest_Extractor(t *testing.T) {
	e, err := Request{Kind: KindFields, List: "2"}.Extractor()
	require.NoError(t, err)
	assert.Equal(t, DefaultDelimiter, e.Mode().Delimiter())
	assert.Equal(t, "b", e.Extract("a\tb"))

	e, err = Request{Kind: KindChars, List: "1"}.Extractor()
	require.NoError(t, err)
	assert.Equal(t, KindChars, e.Mode().Kind())

	_, err = Request{Kind: KindBytes, List: "0"}.Extractor()
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseModeKind(t *testing.T) {
	for in, want := range map[string]ModeKind{
		"fields": KindFields, "f": KindFields,
		"bytes": KindBytes, "B": KindBytes,
		"chars": KindChars, "characters": KindChars,
	} {
		got, err := ParseModeKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseModeKind("lines")
	assert.Error(t, err)
}
