package puzzle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, string) (Result, error) {
	return Result{}, nil
}

func TestCatalogOrdering(t *testing.T) {
	c := NewCatalog()
	c.MustRegister(
		Puzzle{ID: ID{2024, 6}, Solve: noop},
		Puzzle{ID: ID{2015, 1}, Solve: noop},
		Puzzle{ID: ID{2024, 2}, Solve: noop},
		Puzzle{ID: ID{2022, 3}, Solve: noop},
	)

	var ids []ID
	for _, p := range c.All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []ID{{2015, 1}, {2022, 3}, {2024, 2}, {2024, 6}}, ids)
	assert.Equal(t, []int{2015, 2022, 2024}, c.Years())
	assert.Len(t, c.Year(2024), 2)
	assert.Equal(t, 4, c.Len())

	latest, err := c.Latest()
	require.NoError(t, err)
	assert.Equal(t, ID{2024, 6}, latest.ID)
}

func TestCatalogRegisterErrors(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Register(Puzzle{ID: ID{2024, 1}, Solve: noop}))

	err := c.Register(Puzzle{ID: ID{2024, 1}, Solve: noop})
	assert.ErrorContains(t, err, "already registered")

	err = c.Register(Puzzle{ID: ID{2024, 26}, Solve: noop})
	assert.ErrorContains(t, err, "day must be between 1 and 25")

	err = c.Register(Puzzle{ID: ID{2024, 2}})
	assert.ErrorContains(t, err, "has no solver")
}

func TestCatalogLookupMiss(t *testing.T) {
	c := NewCatalog()
	_, err := c.Lookup(ID{2024, 9})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Latest()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    ID
		wantErr string
	}{
		{"slash", []string{"2024/6"}, ID{2024, 6}, ""},
		{"padded", []string{"2024/06"}, ID{2024, 6}, ""},
		{"pair", []string{"2022", "3"}, ID{2022, 3}, ""},
		{"bad year", []string{"abc", "3"}, ID{}, "invalid year"},
		{"bad day", []string{"2024", "x"}, ID{}, "invalid day"},
		{"too early", []string{"2014", "1"}, ID{2014, 1}, "year must be 2015 or later"},
		{"missing day", []string{"2024"}, ID{}, "expected <year> <day>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswers(t *testing.T) {
	assert.Equal(t, Result{PartOne: "41", PartTwo: "6"}, Answers(41, uint64(6)))
	assert.Equal(t, Result{PartOne: "abc"}, PartOneOnly("abc"))
	assert.Equal(t, "2024/06", ID{2024, 6}.String())
}

func TestLinesAndSections(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\r\n\nb\n"))
	assert.Nil(t, Lines("\n"))
	assert.Equal(t, []string{"a\nb", "c"}, Sections("\na\nb\n\nc\n"))

	ints, err := Ints(" 3   4\n-5 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, -5}, ints)

	_, err = Ints("3 x")
	assert.ErrorContains(t, err, `invalid integer "x"`)
}
