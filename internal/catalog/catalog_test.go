package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/advent-go/advent/internal/puzzle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 19, c.Len())
	assert.Equal(t, []int{2015, 2022, 2024, 2025}, c.Years())
	assert.Len(t, c.Year(2024), 15)

	latest, err := c.Latest()
	require.NoError(t, err)
	assert.Equal(t, puzzle.ID{Year: 2025, Day: 1}, latest.ID)
}

func TestExamples(t *testing.T) {
	for _, p := range Default().All() {
		t.Run(p.ID.String(), func(t *testing.T) {
			require.NotEmpty(t, p.Title)
			require.NotEmpty(t, p.Example)

			got, err := p.Solve(context.Background(), p.Example)
			require.NoError(t, err)
			assert.Equal(t, p.ExampleAnswers, got)
		})
	}
}
