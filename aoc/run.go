package aoc

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

// InputFile is the file a standalone day program reads its input from.
const InputFile = "input.txt"

// ErrNoSolution is returned (possibly wrapped) when a puzzle input has no
// answer for one of the parts.
var ErrNoSolution = errors.New("no solution found")

// Answers are the results of both parts of one day's puzzle.
type Answers struct {
	Part1 any
	Part2 any
}

// Print writes the answers as two "Part N: <value>" lines.
func (a Answers) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Part 1: %v\nPart 2: %v\n", a.Part1, a.Part2)
	return err
}

// A Solution solves the puzzle for one day.
type Solution struct {
	Day   int
	Solve func(r io.Reader) (Answers, error)
}

var solutions = make(map[int]Solution)

// Register makes s available to Lookup and Days.
// It panics if a solution for the same day is already registered.
func Register(s Solution) {
	if s.Day < 1 {
		panic(fmt.Sprintf("bad day %d", s.Day))
	}
	if _, ok := solutions[s.Day]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for day %d", s.Day))
	}
	solutions[s.Day] = s
}

// Lookup returns the solution registered for day.
func Lookup(day int) (Solution, bool) {
	s, ok := solutions[day]
	return s, ok
}

// Days lists the registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(solutions))
	for day := range solutions {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// ParseDay parses a day name such as "7", "07", or "day7".
func ParseDay(name string) (int, error) {
	s := strings.TrimPrefix(strings.ToLower(name), "day")
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
	}
	if i == 0 || i < len(s) {
		return 0, fmt.Errorf("bad day name %q", name)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad day name %q", name)
	}
	return n, nil
}

// Run solves s using the input in r.
func Run(s Solution, r io.Reader) (Answers, error) {
	return s.Solve(r)
}

// RunFile solves s using the contents of the named file.
func RunFile(s Solution, name string) (Answers, error) {
	f, err := os.Open(name)
	if err != nil {
		return Answers{}, err
	}
	defer f.Close()
	return Run(s, f)
}

// Main is the body of a standalone day program: it solves s using InputFile
// in the working directory and prints both answers to stdout.
// Any error is fatal.
func Main(s Solution) {
	log.SetFlags(0)
	ans, err := RunFile(s, InputFile)
	if err != nil {
		log.Fatalf("day %d: %s", s.Day, err)
	}
	if err := ans.Print(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
