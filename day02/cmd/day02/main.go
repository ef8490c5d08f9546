// Command day02 prints the answers to day 2 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day02"
)

func main() {
	aoc.Main(day02.Solution)
}
