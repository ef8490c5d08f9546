// Command day03 prints the answers to day 3 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day03"
)

func main() {
	aoc.Main(day03.Solution)
}
