// Package day03 solves 2024 day 3, "Mull It Over": recover the valid
// instructions from corrupted memory.
package day03

import (
	"context"
	_ "embed"
	"math"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(161, 48)

// Op is the kind of a recovered instruction.
type Op int

const (
	Do Op = iota
	Dont
	Mul
)

// Instruction is one recognised instruction. A and B are only set for Mul.
type Instruction struct {
	Op   Op
	A, B int
}

// scanner walks the memory one byte at a time. A failed match never
// consumes the byte that broke it, so "mmul(1,2)" still yields mul(1,2).
type scanner struct {
	buf string
	pos int
}

func (s *scanner) take(c byte) bool {
	if s.pos < len(s.buf) && s.buf[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// takeString consumes as much of value as matches and reports whether all of
// it did, along with how many bytes were consumed.
func (s *scanner) takeString(value string) (bool, int) {
	for i := 0; i < len(value); i++ {
		if !s.take(value[i]) {
			return false, i
		}
	}
	return true, len(value)
}

// takeNumber consumes a run of digits. A run whose value does not fit in 32
// unsigned bits is consumed but rejected.
func (s *scanner) takeNumber() (int, bool) {
	var n uint64
	digits, overflow := 0, false
	for s.pos < len(s.buf) && s.buf[s.pos] >= '0' && s.buf[s.pos] <= '9' {
		if !overflow {
			n = n*10 + uint64(s.buf[s.pos]-'0')
			overflow = n > math.MaxUint32
		}
		s.pos++
		digits++
	}
	return int(n), digits > 0 && !overflow
}

func (s *scanner) next() (Instruction, bool) {
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		s.pos++

		switch c {
		case 'd':
			found, consumed := s.takeString("o()")
			if found {
				return Instruction{Op: Do}, true
			}
			if consumed == 1 {
				if ok, _ := s.takeString("n't()"); ok {
					return Instruction{Op: Dont}, true
				}
			}
		case 'm':
			if ok, _ := s.takeString("ul("); !ok {
				continue
			}
			a, ok := s.takeNumber()
			if !ok || !s.take(',') {
				continue
			}
			b, ok := s.takeNumber()
			if !ok || !s.take(')') {
				continue
			}
			return Instruction{Op: Mul, A: a, B: b}, true
		}
	}
	return Instruction{}, false
}

// Parse extracts every valid instruction in order.
func Parse(memory string) []Instruction {
	s := &scanner{buf: memory}
	var out []Instruction
	for {
		ins, ok := s.next()
		if !ok {
			return out
		}
		out = append(out, ins)
	}
}

// Execute sums the products of mul instructions. When conditional is set,
// don't() disables later muls until the next do().
func Execute(program []Instruction, conditional bool) int {
	enabled := true
	total := 0
	for _, ins := range program {
		switch ins.Op {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled || !conditional {
				total += ins.A * ins.B
			}
		}
	}
	return total
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	program := Parse(input)
	return puzzle.Answers(Execute(program, false), Execute(program, true)), nil
}
