package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into lines, dropping a trailing newline and carriage
// returns. Blank lines inside the input are preserved.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Sections splits input on blank lines.
func Sections(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.Trim(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// Ints parses whitespace separated integers.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}
