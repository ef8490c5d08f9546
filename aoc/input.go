// Package aoc holds the pieces shared by the daily puzzle solutions:
// reading line-oriented input, registering solutions, and running them.
package aoc

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// A LineError records a line of input that could not be parsed.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Lines returns a sequence of the values obtained by calling parse on each
// line of r, in order. A line that fails to parse yields a *LineError and
// the sequence moves on to the next line. An error reading r is yielded last.
//
// The sequence consumes r, so it can only be iterated once.
func Lines[T any](r io.Reader, parse func(string) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		scanner := bufio.NewScanner(r)
		for n := 1; scanner.Scan(); n++ {
			line := scanner.Text()
			v, err := parse(line)
			if err != nil {
				err = &LineError{Line: n, Text: line, Err: err}
				v = zero
			}
			if !yield(v, err) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(zero, err)
		}
	}
}

// Slice parses every line of r with parse and returns the values in input
// order. It stops at the first error and returns it without any values.
func Slice[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var vs []T
	for v, err := range Lines(r, parse) {
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Int parses a base-10 signed integer that must fit in T.
func Int[T constraints.Signed](s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if int64(T(n)) != n {
		return 0, &strconv.NumError{Func: "Int", Num: s, Err: strconv.ErrRange}
	}
	return T(n), nil
}

// Uint parses a base-10 unsigned integer that must fit in T.
func Uint[T constraints.Unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if uint64(T(n)) != n {
		return 0, &strconv.NumError{Func: "Uint", Num: s, Err: strconv.ErrRange}
	}
	return T(n), nil
}

// String returns each line unchanged.
func String(s string) (string, error) { return s, nil }

// Groups returns a sequence of the blank-line-separated records in r.
// Each record is the list of its lines. Blank lines never produce an empty
// record, no matter how many appear in a row or where.
func Groups(r io.Reader) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		scanner := bufio.NewScanner(r)
		var group []string
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				if len(group) > 0 {
					if !yield(group, nil) {
						return
					}
					group = nil
				}
				continue
			}
			group = append(group, line)
		}
		if err := scanner.Err(); err != nil {
			yield(nil, err)
			return
		}
		if len(group) > 0 {
			yield(group, nil)
		}
	}
}

// ReadGroups collects all of the records from Groups.
func ReadGroups(r io.Reader) ([][]string, error) {
	var groups [][]string
	for g, err := range Groups(r) {
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Abs returns the absolute value of n.
func Abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
