// Package day08 solves Handheld Halting.
package day08

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 8.
var Solution = aoc.Solution{Day: 8, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	prog, err := aoc.Slice(r, parseInstruction)
	if err != nil {
		return aoc.Answers{}, err
	}
	p1, err := part1(prog)
	if err != nil {
		return aoc.Answers{}, err
	}
	p2, err := part2(prog)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: p1, Part2: p2}, nil
}

type op uint8

const (
	opAcc op = iota
	opJmp
	opNop
)

var opNames = map[string]op{
	"acc": opAcc,
	"jmp": opJmp,
	"nop": opNop,
}

type instruction struct {
	op  op
	arg int64
}

func parseInstruction(s string) (instruction, error) {
	var insn instruction
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return insn, fmt.Errorf("bad instruction %q", s)
	}
	var ok bool
	insn.op, ok = opNames[parts[0]]
	if !ok {
		return insn, fmt.Errorf("unknown operation %q", parts[0])
	}
	var err error
	insn.arg, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return insn, err
	}
	return insn, nil
}

type exit uint8

const (
	exitLoop      exit = iota // about to run an instruction a second time
	exitTerminate             // jumped to just past the last instruction
	exitCrash                 // jumped anywhere else outside the program
)

type machine struct {
	prog []instruction
	pc   int64
	acc  int64
	seen []bool
}

func newMachine(prog []instruction) *machine {
	return &machine{prog: prog, seen: make([]bool, len(prog))}
}

// step runs one instruction. It returns false if the machine must stop
// instead, either because the program has finished or because the next
// instruction has run before.
func (m *machine) step() bool {
	if m.pc < 0 || m.pc >= int64(len(m.prog)) || m.seen[m.pc] {
		return false
	}
	m.seen[m.pc] = true
	insn := m.prog[m.pc]
	switch insn.op {
	case opAcc:
		m.acc += insn.arg
		m.pc++
	case opJmp:
		m.pc += insn.arg
	case opNop:
		m.pc++
	}
	return true
}

// run steps the machine until it stops and reports why.
func (m *machine) run() exit {
	for m.step() {
	}
	switch {
	case m.pc == int64(len(m.prog)):
		return exitTerminate
	case m.pc < 0 || m.pc > int64(len(m.prog)):
		return exitCrash
	default:
		return exitLoop
	}
}

func part1(prog []instruction) (int64, error) {
	m := newMachine(prog)
	if e := m.run(); e != exitLoop {
		return 0, fmt.Errorf("%w: program does not loop", aoc.ErrNoSolution)
	}
	return m.acc, nil
}

// part2 swaps one jmp for a nop (or the reverse) so that the program
// terminates and returns the final accumulator value.
func part2(prog []instruction) (int64, error) {
	fixed := append([]instruction(nil), prog...)
	for i, insn := range prog {
		switch insn.op {
		case opJmp:
			fixed[i].op = opNop
		case opNop:
			fixed[i].op = opJmp
		default:
			continue
		}
		m := newMachine(fixed)
		if m.run() == exitTerminate {
			return m.acc, nil
		}
		fixed[i] = insn
	}
	return 0, fmt.Errorf("%w: no single jmp/nop swap makes the program terminate", aoc.ErrNoSolution)
}
