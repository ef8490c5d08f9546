// Command day11 prints the answers to day 11 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day11"
)

func main() {
	aoc.Main(day11.Solution)
}
