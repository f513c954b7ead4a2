package codelabel_test

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/codelabel"
)

func TestParse(t *testing.T) {
	raw := strings.Join([]string{
		"func f() {",
		"\tx := 1 // @label:assign",
		"\ty := 2  # @label:py_style",
		"\tz := 3 /* @label:block */",
		"\treturn",
		"}",
	}, "\n")

	p := codelabel.Parse(raw)

	want := strings.Join([]string{
		"func f() {",
		"\tx := 1",
		"\ty := 2",
		"\tz := 3",
		"\treturn",
		"}",
	}, "\n")
	assert.Equal(t, want, p.Clean)
	assert.Equal(t, map[string]int{"assign": 1, "py_style": 2, "block": 3}, p.Lines)

	n, ok := p.Line("block")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = p.Line("missing")
	assert.False(t, ok)
}

func TestParse_NoMarkers(t *testing.T) {
	raw := "a\nb // plain comment\n"
	p := codelabel.Parse(raw)
	assert.Equal(t, raw, p.Clean)
	assert.Empty(t, p.Lines)
}

func TestParse_RepeatedLabelTakesLast(t *testing.T) {
	p := codelabel.Parse("a // @label:x\nb // @label:x")
	assert.Equal(t, 1, p.Lines["x"])
	assert.Equal(t, "a\nb", p.Clean)
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]codelabel.Language{
		"go":         codelabel.Go,
		"Golang":     codelabel.Go,
		"py":         codelabel.Python,
		"javascript": codelabel.JavaScript,
		" JS ":       codelabel.JavaScript,
	}
	for in, want := range cases {
		got, err := codelabel.ParseLanguage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := codelabel.ParseLanguage("rust")
	assert.True(t, errors.Is(err, codelabel.ErrUnknownLanguage))
}

func TestSources_SameLabelsInEveryLanguage(t *testing.T) {
	ids := codelabel.IDs()
	require.NotEmpty(t, ids)

	for _, id := range ids {
		var ref []string
		for _, lang := range codelabel.Languages {
			p, err := codelabel.Source(id, lang)
			require.NoError(t, err, "%s/%s", id, lang)
			require.NotEmpty(t, p.Lines, "%s/%s has no labels", id, lang)
			assert.NotContains(t, p.Clean, "@label:", "%s/%s", id, lang)

			labels := slices.Sorted(maps.Keys(p.Lines))
			if ref == nil {
				ref = labels
				continue
			}
			assert.Equal(t, ref, labels, "%s/%s", id, lang)
		}
	}
}

func TestSource_Unknown(t *testing.T) {
	_, err := codelabel.Source("bogo-sort", codelabel.Go)
	assert.ErrorIs(t, err, codelabel.ErrUnknownSource)

	_, err = codelabel.Source("bubble-sort", codelabel.Language("cobol"))
	assert.ErrorIs(t, err, codelabel.ErrUnknownLanguage)
}
