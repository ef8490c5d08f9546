package day01

import (
	"errors"
	"strings"
	"testing"

	"github.com/cespare/advent2020/aoc"
)

var example = []int{1721, 979, 366, 299, 675, 1456}

func TestPart1(t *testing.T) {
	got, err := part1(example)
	if err != nil {
		t.Fatal(err)
	}
	if want := 514579; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestPart2(t *testing.T) {
	got, err := part2(example)
	if err != nil {
		t.Fatal(err)
	}
	if want := 241861950; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestNoSolution(t *testing.T) {
	for _, entries := range [][]int{
		nil,
		{2020},
		{1010},
		{1, 2, 3},
	} {
		if _, err := part1(entries); !errors.Is(err, aoc.ErrNoSolution) {
			t.Errorf("part1(%v): got %v; want %v", entries, err, aoc.ErrNoSolution)
		}
		if _, err := part2(entries); !errors.Is(err, aoc.ErrNoSolution) {
			t.Errorf("part2(%v): got %v; want %v", entries, err, aoc.ErrNoSolution)
		}
	}
}

func TestLastEntry(t *testing.T) {
	got, err := part1([]int{5, 6, 2015})
	if err != nil {
		t.Fatal(err)
	}
	if want := 5 * 2015; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestSolve(t *testing.T) {
	in := "1721\n979\n366\n299\n675\n1456\n"
	for i := 0; i < 2; i++ {
		got, err := aoc.Run(Solution, strings.NewReader(in))
		if err != nil {
			t.Fatal(err)
		}
		if got.Part1 != 514579 || got.Part2 != 241861950 {
			t.Errorf("got %+v", got)
		}
	}
	if _, err := aoc.Run(Solution, strings.NewReader("1721\nabc\n")); err == nil {
		t.Error("got nil error for malformed input")
	}
}
