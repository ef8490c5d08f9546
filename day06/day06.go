// Package day06 solves Custom Customs.
package day06

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 6.
var Solution = aoc.Solution{Day: 6, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	groups, err := parseGroups(r)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: part1(groups), Part2: part2(groups)}, nil
}

// answers is the set of questions (a-z) one person answered "yes" to.
// Bit i is question 'a'+i.
type answers uint32

func parseAnswers(s string) (answers, error) {
	var a answers
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("bad question %q", c)
		}
		a |= 1 << (c - 'a')
	}
	return a, nil
}

func (a answers) count() int { return bits.OnesCount32(uint32(a)) }

// A group holds the answers of each person in the group.
type group []answers

func parseGroups(r io.Reader) ([]group, error) {
	var groups []group
	for lines, err := range aoc.Groups(r) {
		if err != nil {
			return nil, err
		}
		g := make(group, len(lines))
		for i, line := range lines {
			a, err := parseAnswers(line)
			if err != nil {
				return nil, fmt.Errorf("group %d: %s", len(groups)+1, err)
			}
			g[i] = a
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (g group) anyone() answers {
	var union answers
	for _, a := range g {
		union |= a
	}
	return union
}

func (g group) everyone() answers {
	all := ^answers(0)
	for _, a := range g {
		all &= a
	}
	return all
}

func part1(groups []group) int {
	var sum int
	for _, g := range groups {
		sum += g.anyone().count()
	}
	return sum
}

func part2(groups []group) int {
	var sum int
	for _, g := range groups {
		sum += g.everyone().count()
	}
	return sum
}
