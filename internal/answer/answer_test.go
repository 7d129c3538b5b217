package answer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/types"
)

func TestPrintLayout(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, Solution{
		ID:     puzzle.ID{Year: 2024, Day: 6},
		Result: puzzle.Answers(41, 6),
	})
	require.NoError(t, err)

	assert.Equal(t, "=== 2024 Day 6 ===\n\nPart One:\n41\n\nPart Two:\n6\n", buf.String())
}

func TestPrintMissingPart(t *testing.T) {
	var buf bytes.Buffer
	err := NewPrinter(&buf).Print(Solution{
		ID:     puzzle.ID{Year: 2015, Day: 1},
		Result: puzzle.PartOneOnly(74),
	})
	require.NoError(t, err)

	assert.Equal(t, "=== 2015 Day 1 ===\n\nPart One:\n74\n\nPart Two:\n\n", buf.String())
}

func TestVerdictLine(t *testing.T) {
	var buf bytes.Buffer
	p := Plain(&buf)
	require.NoError(t, p.Verdict(types.VerdictMatch, 1500*time.Microsecond))
	require.NoError(t, p.Verdict(types.VerdictFailed, 2*time.Second))

	assert.Equal(t, "Verdict: match (1.5ms)\nVerdict: failed (2s)\n", buf.String())
}
