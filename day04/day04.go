// Package day04 solves Passport Processing.
package day04

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/advent2020/aoc"
)

// Solution solves day 4.
var Solution = aoc.Solution{Day: 4, Solve: solve}

func init() {
	aoc.Register(Solution)
}

func solve(r io.Reader) (aoc.Answers, error) {
	passports, err := parsePassports(r)
	if err != nil {
		return aoc.Answers{}, err
	}
	return aoc.Answers{Part1: part1(passports), Part2: part2(passports)}, nil
}

// A passport maps field names (byr, iyr, ...) to their values.
// A missing field is absent from the map.
type passport map[string]string

var knownFields = map[string]bool{
	"byr": true,
	"iyr": true,
	"eyr": true,
	"hgt": true,
	"hcl": true,
	"ecl": true,
	"pid": true,
	"cid": true,
}

var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

func parsePassports(r io.Reader) ([]passport, error) {
	var passports []passport
	for group, err := range aoc.Groups(r) {
		if err != nil {
			return nil, err
		}
		p, err := parsePassport(group)
		if err != nil {
			return nil, fmt.Errorf("passport %d: %s", len(passports)+1, err)
		}
		passports = append(passports, p)
	}
	return passports, nil
}

func parsePassport(lines []string) (passport, error) {
	p := make(passport)
	for _, line := range lines {
		for _, field := range strings.Fields(line) {
			k, v, ok := strings.Cut(field, ":")
			if !ok {
				return nil, fmt.Errorf("bad field %q", field)
			}
			if !knownFields[k] {
				return nil, fmt.Errorf("unknown field %q", k)
			}
			if _, ok := p[k]; ok {
				return nil, fmt.Errorf("duplicate field %q", k)
			}
			p[k] = v
		}
	}
	return p, nil
}

func (p passport) complete() bool {
	for _, k := range requiredFields {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

var (
	heightRx    = regexp.MustCompile(`^(\d+)(cm|in)$`)
	hairColorRx = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	passportRx  = regexp.MustCompile(`^\d{9}$`)
)

var eyeColors = map[string]bool{
	"amb": true,
	"blu": true,
	"brn": true,
	"gry": true,
	"grn": true,
	"hzl": true,
	"oth": true,
}

func (p passport) valid() bool {
	return p.complete() &&
		yearBetween(p["byr"], 1920, 2002) &&
		yearBetween(p["iyr"], 2010, 2020) &&
		yearBetween(p["eyr"], 2020, 2030) &&
		validHeight(p["hgt"]) &&
		hairColorRx.MatchString(p["hcl"]) &&
		eyeColors[p["ecl"]] &&
		passportRx.MatchString(p["pid"])
}

func yearBetween(s string, lo, hi int) bool {
	if len(s) != 4 {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

func validHeight(s string) bool {
	m := heightRx.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	switch m[2] {
	case "cm":
		return n >= 150 && n <= 193
	case "in":
		return n >= 59 && n <= 76
	}
	return false
}

func part1(passports []passport) int {
	var n int
	for _, p := range passports {
		if p.complete() {
			n++
		}
	}
	return n
}

func part2(passports []passport) int {
	var n int
	for _, p := range passports {
		if p.valid() {
			n++
		}
	}
	return n
}
