// Command day04 prints the answers to day 4 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day04"
)

func main() {
	aoc.Main(day04.Solution)
}
