// Command day06 prints the answers to day 6 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day06"
)

func main() {
	aoc.Main(day06.Solution)
}
