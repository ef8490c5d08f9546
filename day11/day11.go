// Package day11 solves Seating System.
package day11

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 11.
var Solution = aoc.Solution{Day: 11, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	lines, err := aoc.Slice(r, aoc.String)
	if err != nil {
		return aoc.Answers{}, err
	}
	l, err := parseLayout(lines)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: part1(l), Part2: part2(l)}, nil
}

type cell uint8

const (
	floor cell = iota
	empty
	taken
)

// A layout is the seating area, stored row by row.
type layout struct {
	cells         []cell
	width, height int
}

func parseLayout(lines []string) (*layout, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, errors.New("empty seat layout")
	}
	l := &layout{width: len(lines[0]), height: len(lines)}
	l.cells = make([]cell, 0, l.width*l.height)
	for y, line := range lines {
		if len(line) != l.width {
			return nil, fmt.Errorf("row %d has width %d; want %d", y+1, len(line), l.width)
		}
		for x := 0; x < len(line); x++ {
			var c cell
			switch line[x] {
			case '.':
				c = floor
			case 'L':
				c = empty
			case '#':
				c = taken
			default:
				return nil, fmt.Errorf("bad seat %q at row %d, column %d", line[x], y+1, x+1)
			}
			l.cells = append(l.cells, c)
		}
	}
	return l, nil
}

var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (l *layout) inBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// neighbors returns, for each cell, the indexes of the seats that the
// person sitting there pays attention to. With lineOfSight false that is
// the adjacent seats; otherwise it is the first seat visible in each of the
// eight directions.
func (l *layout) neighbors(lineOfSight bool) [][]int {
	nbs := make([][]int, len(l.cells))
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			i := y*l.width + x
			if l.cells[i] == floor {
				continue
			}
			for _, d := range directions {
				nx, ny := x+d[0], y+d[1]
				for lineOfSight && l.inBounds(nx, ny) && l.cells[ny*l.width+nx] == floor {
					nx, ny = nx+d[0], ny+d[1]
				}
				if l.inBounds(nx, ny) && l.cells[ny*l.width+nx] != floor {
					nbs[i] = append(nbs[i], ny*l.width+nx)
				}
			}
		}
	}
	return nbs
}

// settle applies the seating rules until nothing changes and returns the
// number of occupied seats. An empty seat with no occupied neighbors
// becomes occupied; an occupied seat with at least tolerance occupied
// neighbors becomes empty.
func (l *layout) settle(nbs [][]int, tolerance int) int {
	cur := append([]cell(nil), l.cells...)
	next := make([]cell, len(cur))
	for {
		changed := false
		for i, c := range cur {
			n := 0
			for _, j := range nbs[i] {
				if cur[j] == taken {
					n++
				}
			}
			switch {
			case c == empty && n == 0:
				c = taken
				changed = true
			case c == taken && n >= tolerance:
				c = empty
				changed = true
			}
			next[i] = c
		}
		cur, next = next, cur
		if !changed {
			break
		}
	}
	var occupied int
	for _, c := range cur {
		if c == taken {
			occupied++
		}
	}
	return occupied
}

func part1(l *layout) int {
	return l.settle(l.neighbors(false), 4)
}

func part2(l *layout) int {
	return l.settle(l.neighbors(true), 5)
}
