package day09

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cespare/advent2020/aoc"
)

const example = `35
20
15
25
47
40
62
55
65
95
102
117
150
182
127
219
299
277
309
576
`

func parseExample(t *testing.T) []uint64 {
	t.Helper()
	nums, err := aoc.Slice(strings.NewReader(example), aoc.Uint[uint64])
	if err != nil {
		t.Fatal(err)
	}
	return nums
}

func TestPart1(t *testing.T) {
	got, err := part1(parseExample(t), 5)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(127); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestPart2(t *testing.T) {
	got, err := part2(parseExample(t), 5)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(62); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestHasPairSum(t *testing.T) {
	var window []uint64
	for i := uint64(1); i <= 25; i++ {
		window = append(window, i)
	}
	for _, tt := range []struct {
		sum  uint64
		want bool
	}{
		{26, true},
		{49, true},
		{100, false},
		{50, false},
		{3, true},
		{2, false},
	} {
		if got := hasPairSum(window, tt.sum); got != tt.want {
			t.Errorf("hasPairSum(1..25, %d): got %t; want %t", tt.sum, got, tt.want)
		}
	}
	if hasPairSum([]uint64{5, 5, 1}, 10) {
		t.Error("two equal numbers counted as a pair")
	}
}

func TestNoSolution(t *testing.T) {
	if _, err := part1([]uint64{1, 2, 3}, 2); !errors.Is(err, aoc.ErrNoSolution) {
		t.Errorf("part1: got %v; want %v", err, aoc.ErrNoSolution)
	}
	// 20 is invalid but no run of two or more sums to it.
	if _, err := part2([]uint64{1, 2, 20}, 2); !errors.Is(err, aoc.ErrNoSolution) {
		t.Errorf("part2: got %v; want %v", err, aoc.ErrNoSolution)
	}
}

func TestSolve(t *testing.T) {
	// 1 through 25, then 100, which no two of them add up to.
	// The first run adding up to 100 is 9 through 16.
	var in strings.Builder
	for i := 1; i <= 25; i++ {
		fmt.Fprintln(&in, i)
	}
	in.WriteString("100\n")
	want := aoc.Answers{Part1: uint64(100), Part2: uint64(9 + 16)}
	for i := 0; i < 2; i++ {
		got, err := aoc.Run(Solution, strings.NewReader(in.String()))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("run %d: got %+v; want %+v", i+1, got, want)
		}
	}
}
