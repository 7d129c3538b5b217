// Package answer formats puzzle solutions for the terminal.
package answer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/advent-go/advent/internal/puzzle"
	"github.com/advent-go/advent/internal/types"
)

// Solution is a solved puzzle ready to print.
type Solution struct {
	ID     puzzle.ID
	Result puzzle.Result
}

// Printer writes solutions in the standard block layout:
//
//	=== 2024 Day 6 ===
//
//	Part One:
//	41
//
//	Part Two:
//	6
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer. Colour is used only when out is the process
// stdout and fatih/color has not disabled it (NO_COLOR, non-tty).
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:   out,
		color: out == io.Writer(os.Stdout) && !color.NoColor,
	}
}

// Plain returns a printer that never emits escape codes.
func Plain(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) paint(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Print writes one solution block.
func (p *Printer) Print(s Solution) error {
	header := p.paint(color.FgCyan, color.Bold)
	label := p.paint(color.FgYellow)
	value := p.paint(color.FgGreen, color.Bold)

	_, err := fmt.Fprintf(p.out, "%s\n\n%s\n%s\n\n%s\n%s\n",
		header(fmt.Sprintf("=== %d Day %d ===", s.ID.Year, s.ID.Day)),
		label("Part One:"), value(s.Result.PartOne),
		label("Part Two:"), value(s.Result.PartTwo),
	)
	return err
}

// Verdict writes a one-line summary of how a run compared with the expected
// answers, e.g. "Verdict: match (1.2ms)".
func (p *Printer) Verdict(v types.Verdict, elapsed time.Duration) error {
	var paint func(a ...interface{}) string
	switch v {
	case types.VerdictMatch:
		paint = p.paint(color.FgGreen)
	case types.VerdictNew:
		paint = p.paint(color.FgYellow)
	default:
		paint = p.paint(color.FgRed, color.Bold)
	}
	_, err := fmt.Fprintf(p.out, "Verdict: %s (%s)\n", paint(string(v)), elapsed.Round(time.Microsecond))
	return err
}

// Print writes s to w without colour.
func Print(w io.Writer, s Solution) error {
	return Plain(w).Print(s)
}
