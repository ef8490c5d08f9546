// Command day10 prints the answers to day 10 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day10"
)

func main() {
	aoc.Main(day10.Solution)
}
