// Package day09 solves 2024 day 9, "Disk Fragmenter": compact a disk map and
// compute the filesystem checksum.
package day09

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/advent-go/advent/internal/puzzle"
)

//go:embed example.txt
var Example string

var ExampleAnswers = puzzle.Answers(1928, 2858)

const free = -1

// span is a run of blocks on the disk.
type span struct {
	Pos, Len int
}

// Disk is a dense disk map: files[id] is the span of file id, gaps the free
// spans between them in disk order.
type Disk struct {
	files []span
	gaps  []span
}

func Parse(input string) (*Disk, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("disk map is empty")
	}

	d := &Disk{}
	pos := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid digit %q at offset %d", c, i)
		}
		n := int(c - '0')
		if i%2 == 0 {
			d.files = append(d.files, span{pos, n})
		} else if n > 0 {
			d.gaps = append(d.gaps, span{pos, n})
		}
		pos += n
	}
	return d, nil
}

// blocks expands the map into one entry per block holding a file id or free.
func (d *Disk) blocks() []int {
	size := 0
	if len(d.files) > 0 {
		last := d.files[len(d.files)-1]
		size = last.Pos + last.Len
	}
	out := make([]int, size)
	for i := range out {
		out[i] = free
	}
	for id, f := range d.files {
		for p := f.Pos; p < f.Pos+f.Len; p++ {
			out[p] = id
		}
	}
	return out
}

func checksum(blocks []int) int {
	sum := 0
	for pos, id := range blocks {
		if id != free {
			sum += pos * id
		}
	}
	return sum
}

// CompactBlocks moves blocks one at a time from the end of the disk into the
// leftmost free block and returns the checksum.
func (d *Disk) CompactBlocks() int {
	blocks := d.blocks()
	left, right := 0, len(blocks)-1
	for {
		for left < right && blocks[left] != free {
			left++
		}
		for left < right && blocks[right] == free {
			right--
		}
		if left >= right {
			break
		}
		blocks[left], blocks[right] = blocks[right], free
	}
	return checksum(blocks)
}

// CompactFiles moves each whole file once, in order of decreasing id, into
// the leftmost free span that fits it and lies left of the file. It returns
// the checksum.
func (d *Disk) CompactFiles() int {
	files := append([]span(nil), d.files...)
	gaps := append([]span(nil), d.gaps...)

	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for i := range gaps {
			g := &gaps[i]
			if g.Pos >= f.Pos {
				break
			}
			if g.Len >= f.Len {
				f.Pos = g.Pos
				g.Pos += f.Len
				g.Len -= f.Len
				break
			}
		}
	}

	sum := 0
	for id, f := range files {
		for p := f.Pos; p < f.Pos+f.Len; p++ {
			sum += p * id
		}
	}
	return sum
}

func Solve(_ context.Context, input string) (puzzle.Result, error) {
	d, err := Parse(input)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answers(d.CompactBlocks(), d.CompactFiles()), nil
}
