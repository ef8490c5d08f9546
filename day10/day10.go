// Package day10 solves Adapter Array.
package day10

import (
	"fmt"
	"io"
	"sort"

	"github.com/cespare/advent2020/aoc"
)

// maxStep is the largest joltage difference an adapter accepts.
const maxStep = 3

// Solution solves day 10.
var Solution = aoc.Solution{Day: 10, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	adapters, err := aoc.Slice(r, aoc.Int[int])
	if err != nil {
		return aoc.Answers{}, err
	}
	c, err := newChain(adapters)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: part1(c), Part2: part2(c)}, nil
}

// A chain is every joltage from the outlet (0) through the adapters to the
// device (3 above the highest adapter), in increasing order.
type chain []int

func newChain(adapters []int) (chain, error) {
	c := make(chain, 0, len(adapters)+2)
	c = append(c, 0)
	c = append(c, adapters...)
	sort.Ints(c[1:])
	if len(adapters) > 0 && c[1] <= 0 {
		return nil, fmt.Errorf("adapter rating %d is not positive", c[1])
	}
	c = append(c, c[len(c)-1]+maxStep)
	return c, nil
}

// part1 uses every adapter and multiplies the number of 1-jolt
// differences by the number of 3-jolt differences.
func part1(c chain) int {
	var ones, threes int
	for i := 1; i < len(c); i++ {
		switch c[i] - c[i-1] {
		case 1:
			ones++
		case 3:
			threes++
		}
	}
	return ones * threes
}

// part2 counts the distinct ways to connect the outlet to the device.
func part2(c chain) int64 {
	ways := make([]int64, len(c))
	ways[0] = 1
	for i := 1; i < len(c); i++ {
		for j := i - 1; j >= 0 && c[i]-c[j] <= maxStep; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1]
}
