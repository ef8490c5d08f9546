// Package day03 solves Toboggan Trajectory.
package day03

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 3.
var Solution = aoc.Solution{Day: 3, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	rows, err := aoc.Slice(r, parseRow)
	if err != nil {
		return aoc.Answers{}, err
	}
	m, err := newTreeMap(rows)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: part1(m), Part2: part2(m)}, nil
}

// A row is one line of the map; true marks a tree.
type row []bool

func parseRow(s string) (row, error) {
	r := make(row, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
		case '#':
			r[i] = true
		default:
			return nil, fmt.Errorf("bad map square %q", s[i])
		}
	}
	return r, nil
}

// A treeMap is the slope; the pattern repeats to the right forever.
type treeMap struct {
	rows  []row
	width int
}

func newTreeMap(rows []row) (*treeMap, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty map")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, errors.New("empty map row")
	}
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("row %d has width %d; want %d", i+1, len(r), width)
		}
	}
	return &treeMap{rows: rows, width: width}, nil
}

// trees counts the trees hit going from the top-left corner to the bottom,
// moving right dx and down dy each step.
func (m *treeMap) trees(dx, dy int) int {
	var n int
	for x, y := dx, dy; y < len(m.rows); x, y = x+dx, y+dy {
		if m.rows[y][x%m.width] {
			n++
		}
	}
	return n
}

func part1(m *treeMap) int {
	return m.trees(3, 1)
}

var slopes = [][2]int{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

func part2(m *treeMap) int {
	product := 1
	for _, s := range slopes {
		product *= m.trees(s[0], s[1])
	}
	return product
}
