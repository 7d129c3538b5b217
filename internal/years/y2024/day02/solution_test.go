package day02

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSafety(t *testing.T) {
	tests := []struct {
		report     []int
		safe       bool
		mostlySafe bool
	}{
		{[]int{7, 6, 4, 2, 1}, true, true},
		{[]int{1, 2, 7, 8, 9}, false, false},
		{[]int{9, 7, 6, 2, 1}, false, false},
		{[]int{1, 3, 2, 4, 5}, false, true},
		{[]int{8, 6, 4, 4, 1}, false, true},
		{[]int{1, 3, 6, 7, 9}, true, true},
		{[]int{10, 9, 11, 12, 13, 14}, false, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.report), func(t *testing.T) {
			assert.Equal(t, tt.safe, IsSafe(tt.report))
			assert.Equal(t, tt.mostlySafe, IsMostlySafe(tt.report))
		})
	}
}

func TestParseReportsRejectsShortReport(t *testing.T) {
	_, err := ParseReports("1 2 3\n4\n")
	assert.ErrorContains(t, err, "report 2: need at least two levels")
}

func TestExample(t *testing.T) {
	got, err := Solve(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, ExampleAnswers, got)
}
