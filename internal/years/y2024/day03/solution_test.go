package day03

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got := Parse(Example)
	want := []Instruction{
		{Op: Mul, A: 2, B: 4},
		{Op: Dont},
		{Op: Mul, A: 5, B: 5},
		{Op: Mul, A: 11, B: 8},
		{Op: Do},
		{Op: Mul, A: 8, B: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		memory string
		want   []Instruction
	}{
		{"repeated m", "mmul(1,2)", []Instruction{{Op: Mul, A: 1, B: 2}}},
		{"restart after broken mul", "mul(2,mul(3,4)", []Instruction{{Op: Mul, A: 3, B: 4}}},
		{"spaces rejected", "mul ( 2 , 4 )", nil},
		{"missing number", "mul(,4)", nil},
		{"largest number", "mul(4294967295,1)", []Instruction{{Op: Mul, A: 4294967295, B: 1}}},
		{"number too large", "mul(4294967296,1)mul(99999999999999999999999,2)mul(3,4)", []Instruction{{Op: Mul, A: 3, B: 4}}},
		{"dont needs parens", "don't_do()", []Instruction{{Op: Do}}},
		{"first example", "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))",
			[]Instruction{{Op: Mul, A: 2, B: 4}, {Op: Mul, A: 5, B: 5}, {Op: Mul, A: 11, B: 8}, {Op: Mul, A: 8, B: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Parse(tt.memory)); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.memory, diff)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	program := Parse(Example)
	assert.Equal(t, 161, Execute(program, false))
	assert.Equal(t, 48, Execute(program, true))
}

func TestExample(t *testing.T) {
	got, err := Solve(context.Background(), Example)
	require.NoError(t, err)
	assert.Equal(t, ExampleAnswers, got)
}
