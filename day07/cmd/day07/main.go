// Command day07 prints the answers to day 7 of Advent of Code 2020,
// reading the puzzle input from input.txt.
package main

import (
	"github.com/cespare/advent2020/aoc"
	"github.com/cespare/advent2020/day07"
)

func main() {
	aoc.Main(day07.Solution)
}
