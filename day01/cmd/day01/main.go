// Command day01 prints the answers to day 1 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day01"
)

func main() {
	aoc.Main(day01.Solution)
}
