// Package day02 solves Password Philosophy.
package day02

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 2.
var Solution = aoc.Solution{Day: 2, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	entries, err := aoc.Slice(r, parseEntry)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: part1(entries), Part2: part2(entries)}, nil
}

// An entry is one line of the password database: a policy and a password.
type entry struct {
	lo, hi   int
	char     byte
	password string
}

// parseEntry parses a line such as "1-3 a: abcde".
func parseEntry(s string) (entry, error) {
	var e entry
	policy, password, ok := strings.Cut(s, ": ")
	if !ok {
		return e, fmt.Errorf("missing password in %q", s)
	}
	e.password = password
	bounds, char, ok := strings.Cut(policy, " ")
	if !ok || len(char) != 1 {
		return e, fmt.Errorf("bad policy %q", policy)
	}
	e.char = char[0]
	lo, hi, ok := strings.Cut(bounds, "-")
	if !ok {
		return e, fmt.Errorf("bad range %q", bounds)
	}
	var err error
	if e.lo, err = strconv.Atoi(lo); err != nil {
		return e, err
	}
	if e.hi, err = strconv.Atoi(hi); err != nil {
		return e, err
	}
	if e.lo < 0 || e.hi < e.lo {
		return e, fmt.Errorf("bad range %q", bounds)
	}
	return e, nil
}

func part1(entries []entry) int {
	var valid int
	for _, e := range entries {
		n := strings.Count(e.password, string([]byte{e.char}))
		if n >= e.lo && n <= e.hi {
			valid++
		}
	}
	return valid
}

func part2(entries []entry) int {
	var valid int
	for _, e := range entries {
		if e.hasCharAt(e.lo) != e.hasCharAt(e.hi) {
			valid++
		}
	}
	return valid
}

// hasCharAt reports whether the policy character is at the 1-based
// position pos of the password.
func (e entry) hasCharAt(pos int) bool {
	return pos >= 1 && pos <= len(e.password) && e.password[pos-1] == e.char
}
