// Package day12 solves Rain Risk.
package day12

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 12.
var Solution = aoc.Solution{Day: 12, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	insns, err := aoc.Slice(r, parseInstruction)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: part1(insns), Part2: part2(insns)}, nil
}

type instruction struct {
	action byte
	value  int
}

func parseInstruction(s string) (instruction, error) {
	var insn instruction
	if len(s) < 2 {
		return insn, fmt.Errorf("bad instruction %q", s)
	}
	insn.action = s[0]
	var err error
	insn.value, err = strconv.Atoi(s[1:])
	if err != nil {
		return insn, err
	}
	switch insn.action {
	case 'N', 'S', 'E', 'W', 'F':
		if insn.value < 0 {
			return insn, fmt.Errorf("negative distance in %q", s)
		}
	case 'L', 'R':
		if insn.value < 0 || insn.value%90 != 0 {
			return insn, fmt.Errorf("turn %q is not a multiple of 90 degrees", s)
		}
	default:
		return insn, fmt.Errorf("unknown action %q", insn.action)
	}
	return insn, nil
}

// A vec2 is a position or direction. Y grows to the north and x to the east.
type vec2 struct {
	x, y int
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

func (v vec2) scalarMul(n int) vec2 {
	return vec2{v.x * n, v.y * n}
}

// rotate turns v about the origin by degrees (a multiple of 90);
// positive is clockwise.
func (v vec2) rotate(degrees int) vec2 {
	turns := ((degrees/90)%4 + 4) % 4
	for i := 0; i < turns; i++ {
		v = vec2{v.y, -v.x}
	}
	return v
}

func (v vec2) manhattan() int {
	return aoc.Abs(v.x) + aoc.Abs(v.y)
}

var compass = map[byte]vec2{
	'N': {0, 1},
	'S': {0, -1},
	'E': {1, 0},
	'W': {-1, 0},
}

// turn converts an L/R instruction into clockwise degrees.
func (insn instruction) turn() int {
	if insn.action == 'L' {
		return -insn.value
	}
	return insn.value
}

// part1 moves the ship directly; F moves it the way it is facing.
func part1(insns []instruction) int {
	var ship vec2
	facing := compass['E']
	for _, insn := range insns {
		switch insn.action {
		case 'N', 'S', 'E', 'W':
			ship = ship.add(compass[insn.action].scalarMul(insn.value))
		case 'L', 'R':
			facing = facing.rotate(insn.turn())
		case 'F':
			ship = ship.add(facing.scalarMul(insn.value))
		}
	}
	return ship.manhattan()
}

// part2 moves a waypoint kept relative to the ship; F moves the ship
// toward the waypoint.
func part2(insns []instruction) int {
	var ship vec2
	waypoint := vec2{10, 1}
	for _, insn := range insns {
		switch insn.action {
		case 'N', 'S', 'E', 'W':
			waypoint = waypoint.add(compass[insn.action].scalarMul(insn.value))
		case 'L', 'R':
			waypoint = waypoint.rotate(insn.turn())
		case 'F':
			ship = ship.add(waypoint.scalarMul(insn.value))
		}
	}
	return ship.manhattan()
}
