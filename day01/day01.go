// Package day01 solves Report Repair: finding expense entries that sum to 2020.
package day01

import (
	"fmt"
	"io"

	"github.com/cespare/advent2020/aoc"
)

const target = 2020

// Solution solves day 1.
var Solution = aoc.Solution{Day: 1, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	entries, err := aoc.Slice(r, aoc.Int[int])
	if err != nil {
		return aoc.Answers{}, err
	}
	p1, err := part1(entries)
	if err != nil {
		return aoc.Answers{}, err
	}
	p2, err := part2(entries)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: p1, Part2: p2}, nil
}

func part1(entries []int) (int, error) {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i]+entries[j] == target {
				return entries[i] * entries[j], nil
			}
		}
	}
	return 0, fmt.Errorf("%w: no two entries sum to %d", aoc.ErrNoSolution, target)
}

func part2(entries []int) (int, error) {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			for k := j + 1; k < len(entries); k++ {
				if entries[i]+entries[j]+entries[k] == target {
					return entries[i] * entries[j] * entries[k], nil
				}
			}
		}
	}
	return 0, fmt.Errorf("%w: no three entries sum to %d", aoc.ErrNoSolution, target)
}
