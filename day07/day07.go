// Package day07 solves Handy Haversacks.
package day07

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/advent2020/aoc"
)

const goal = "shiny gold"

// Solution solves day 7.
var Solution = aoc.Solution{Day: 7, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	rules, err := aoc.Slice(r, parseRule)
	if err != nil {
		return aoc.Answers{}, err
	}
	s, err := newSolver(rules)
	if err != nil {
		return aoc.Answers{}, err
	}
	p1, err := part1(s)
	if err != nil {
		return aoc.Answers{}, err
	}
	p2, err := part2(s)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: p1, Part2: p2}, nil
}

type content struct {
	count int
	color string
}

type rule struct {
	color    string
	contents []content
}

// parseRule parses a line such as
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
func parseRule(s string) (rule, error) {
	var r rule
	outer, inner, ok := strings.Cut(strings.TrimSuffix(s, "."), " bags contain ")
	if !ok || outer == "" {
		return r, fmt.Errorf("bad rule %q", s)
	}
	r.color = outer
	if inner == "no other bags" {
		return r, nil
	}
	for _, part := range strings.Split(inner, ", ") {
		part = strings.TrimSuffix(strings.TrimSuffix(part, " bags"), " bag")
		n, color, ok := strings.Cut(part, " ")
		if !ok || color == "" {
			return r, fmt.Errorf("bad bag contents %q", part)
		}
		count, err := strconv.Atoi(n)
		if err != nil {
			return r, err
		}
		if count < 1 {
			return r, fmt.Errorf("bad bag count %d", count)
		}
		r.contents = append(r.contents, content{count, color})
	}
	return r, nil
}

// A solver answers questions about the bag rules, memoizing as it goes.
type solver struct {
	rules map[string][]content

	holdsGoal map[string]bool
	inside    map[string]int
	visiting  map[string]bool
}

var errCycle = errors.New("bag rules contain a cycle")

func newSolver(rules []rule) (*solver, error) {
	s := &solver{
		rules:     make(map[string][]content, len(rules)),
		holdsGoal: make(map[string]bool),
		inside:    make(map[string]int),
		visiting:  make(map[string]bool),
	}
	for _, r := range rules {
		if _, ok := s.rules[r.color]; ok {
			return nil, fmt.Errorf("duplicate rule for %s bags", r.color)
		}
		s.rules[r.color] = r.contents
	}
	for color, contents := range s.rules {
		for _, c := range contents {
			if _, ok := s.rules[c.color]; !ok {
				return nil, fmt.Errorf("%s bags contain %s bags, which have no rule", color, c.color)
			}
		}
	}
	return s, nil
}

// canHold reports whether a bag of the given color eventually contains
// a bag of the goal color.
func (s *solver) canHold(color string) (bool, error) {
	if v, ok := s.holdsGoal[color]; ok {
		return v, nil
	}
	if s.visiting[color] {
		return false, errCycle
	}
	s.visiting[color] = true
	defer delete(s.visiting, color)

	var v bool
	for _, c := range s.rules[color] {
		if c.color == goal {
			v = true
			break
		}
		ok, err := s.canHold(c.color)
		if err != nil {
			return false, err
		}
		if ok {
			v = true
			break
		}
	}
	s.holdsGoal[color] = v
	return v, nil
}

// countInside returns how many bags a bag of the given color must contain.
func (s *solver) countInside(color string) (int, error) {
	if n, ok := s.inside[color]; ok {
		return n, nil
	}
	if s.visiting[color] {
		return 0, errCycle
	}
	s.visiting[color] = true
	defer delete(s.visiting, color)

	var n int
	for _, c := range s.rules[color] {
		m, err := s.countInside(c.color)
		if err != nil {
			return 0, err
		}
		n += c.count * (1 + m)
	}
	s.inside[color] = n
	return n, nil
}

func part1(s *solver) (int, error) {
	var n int
	for color := range s.rules {
		ok, err := s.canHold(color)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func part2(s *solver) (int, error) {
	if _, ok := s.rules[goal]; !ok {
		return 0, fmt.Errorf("%w: no rule for %s bags", aoc.ErrNoSolution, goal)
	}
	return s.countInside(goal)
}
