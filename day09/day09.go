// Package day09 solves Encoding Error.
package day09

import (
	"fmt"
	"io"

	"github.com/cespare/advent2020/aoc"
)

const preamble = 25

// Solution solves day 9.
var Solution = aoc.Solution{Day: 9, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	nums, err := aoc.Slice(r, aoc.Uint[uint64])
	if err != nil {
		return aoc.Answers{}, err
	}
	p1, err := part1(nums, preamble)
	if err != nil {
		return aoc.Answers{}, err
	}
	p2, err := part2(nums, preamble)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: p1, Part2: p2}, nil
}

// part1 finds the first number (after the preamble) that is not the sum of
// two different numbers among the n before it.
func part1(nums []uint64, n int) (uint64, error) {
	for i := n; i < len(nums); i++ {
		if !hasPairSum(nums[i-n:i], nums[i]) {
			return nums[i], nil
		}
	}
	return 0, fmt.Errorf("%w: every number follows the rule", aoc.ErrNoSolution)
}

func hasPairSum(window []uint64, sum uint64) bool {
	for i, a := range window {
		for _, b := range window[i+1:] {
			if a != b && a+b == sum {
				return true
			}
		}
	}
	return false
}

// part2 finds a contiguous run of at least two numbers adding up to the
// invalid number from part1 and returns the sum of its smallest and
// largest values.
func part2(nums []uint64, n int) (uint64, error) {
	invalid, err := part1(nums, n)
	if err != nil {
		return 0, err
	}
	// All inputs are positive, so the run can be found with a sliding window.
	var sum uint64
	lo := 0
	for hi := 0; hi < len(nums); hi++ {
		sum += nums[hi]
		for sum > invalid && lo < hi {
			sum -= nums[lo]
			lo++
		}
		if sum == invalid && hi > lo {
			min, max := nums[lo], nums[lo]
			for _, v := range nums[lo : hi+1] {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
			return min + max, nil
		}
	}
	return 0, fmt.Errorf("%w: no contiguous run sums to %d", aoc.ErrNoSolution, invalid)
}
