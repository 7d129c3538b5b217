package day05

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInOrder(t *testing.T) {
	q, err := Parse(Example)
	require.NoError(t, err)
	require.Len(t, q.Updates, 6)

	var got []bool
	for _, pages := range q.Updates {
		got = append(got, q.InOrder(pages))
	}
	assert.Equal(t, []bool{true, true, true, false, false, false}, got)
}

func TestReorder(t *testing.T) {
	q, err := Parse(Example)
	require.NoError(t, err)

	tests := []struct {
		pages []int
		want  []int
	}{
		{[]int{75, 97, 47, 61, 53}, []int{97, 75, 47, 61, 53}},
		{[]int{61, 13, 29}, []int{61, 29, 13}},
		{[]int{97, 13, 75, 29, 47}, []int{97, 75, 47, 29, 13}},
	}
	for _, tt := range tests {
		got, err := q.Reorder(tt.pages)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestRuleBetweenDistantPages(t *testing.T) {
	q, err := Parse("1|3\n\n3,2,1\n")
	require.NoError(t, err)

	assert.False(t, q.InOrder([]int{3, 2, 1}))
	assert.True(t, q.InOrder([]int{1, 2, 3}))

	got, err := q.Reorder([]int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	ordered, fixed, err := q.Checksums()
	require.NoError(t, err)
	assert.Equal(t, 0, ordered)
	assert.Equal(t, 2, fixed)
}

func TestReorderCyclicRules(t *testing.T) {
	q, err := Parse("1|2\n2|1\n\n1,2,3\n")
	require.NoError(t, err)

	_, err = q.Reorder([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrCyclicRules)

	_, err = Solve(context.Background(), "1|2\n2|1\n\n1,2,3\n")
	assert.ErrorContains(t, err, "update 1")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("47|53\n")
	assert.ErrorContains(t, err, "expected rules and updates sections")

	_, err = Parse("47-53\n\n47,53,1\n")
	assert.ErrorContains(t, err, "missing '|'")

	_, err = Parse("47|53\n\n47,53\n")
	assert.ErrorContains(t, err, "has no middle page")
}

func TestExample(t *testing.T) {
	got, err := Solve(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, ExampleAnswers, got)
}
