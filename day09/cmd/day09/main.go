// Command day09 prints the answers to day 9 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day09"
)

func main() {
	aoc.Main(day09.Solution)
}
