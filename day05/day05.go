// Package day05 solves Binary Boarding.
package day05

import (
	"fmt"
	"io"
	"sort"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 5.
var Solution = aoc.Solution{Day: 5, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	ids, err := aoc.Slice(r, seatID)
	if err != nil {
		return aoc.Answers{}, err
	}
	p1, err := part1(ids)
	if err != nil {
		return aoc.Answers{}, err
	}
	p2, err := part2(ids)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: p1, Part2: p2}, nil
}

// seatID decodes a boarding pass such as "FBFBBFFRLR".
// The first seven characters pick one of 128 rows (F is the lower half,
// B the upper) and the last three one of 8 columns (L lower, R upper).
// The ID is row*8 + column, which is the whole pass read as binary.
func seatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, fmt.Errorf("boarding pass %q is not 10 characters", pass)
	}
	var id int
	for i := 0; i < len(pass); i++ {
		id <<= 1
		c := pass[i]
		switch {
		case i < 7 && c == 'F', i >= 7 && c == 'L':
		case i < 7 && c == 'B', i >= 7 && c == 'R':
			id |= 1
		default:
			return 0, fmt.Errorf("bad character %q in boarding pass %q", c, pass)
		}
	}
	return id, nil
}

func part1(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no boarding passes", aoc.ErrNoSolution)
	}
	max := ids[0]
	for _, id := range ids[1:] {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// part2 finds the one seat missing from the list whose neighbors
// (ID-1 and ID+1) are both taken.
func part2(ids []int) (int, error) {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+2 {
			return sorted[i] - 1, nil
		}
	}
	return 0, fmt.Errorf("%w: no empty seat between two taken seats", aoc.ErrNoSolution)
}
