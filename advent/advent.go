// Command advent runs any of the Advent of Code 2020 solutions.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cespare/advent2020/aoc"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"

	_ "github.com/cespare/advent2020/day01"
	_ "github.com/cespare/advent2020/day02"
	_ "github.com/cespare/advent2020/day03"
	_ "github.com/cespare/advent2020/day04"
	_ "github.com/cespare/advent2020/day05"
	_ "github.com/cespare/advent2020/day06"
	_ "github.com/cespare/advent2020/day07"
	_ "github.com/cespare/advent2020/day08"
	_ "github.com/cespare/advent2020/day09"
	_ "github.com/cespare/advent2020/day10"
	_ "github.com/cespare/advent2020/day11"
	_ "github.com/cespare/advent2020/day12"
)

func main() {
	log.SetFlags(0)
	var (
		configFile  = flag.String("config", defaultConfigFile, "ini file with input locations")
		inputDir    = flag.String("inputdir", "", "directory holding NN.txt input files (overrides config)")
		verbose     = flag.Bool("v", false, "log input sizes and timings")
		profileFile = flag.String("fgprof", "", "write a wall-clock profile to this file")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile, *configFile == defaultConfigFile)
	if err != nil {
		log.Fatal(err)
	}
	if *inputDir != "" {
		cfg.inputDir = *inputDir
	}

	days, err := selectDays(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	r := runner{cfg: cfg, verbose: *verbose, w: os.Stdout}
	if err := profile(*profileFile, func() error { return r.runAll(days) }); err != nil {
		log.Fatal(err)
	}
}

// profile calls fn while writing a wall-clock profile to name. The profile
// is flushed even if fn fails. An empty name means no profiling.
func profile(name string, fn func() error) error {
	if name == "" {
		return fn()
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	err = fn()
	if stopErr := stop(); err == nil {
		err = stopErr
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] day... | all\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "where day is one of:")
	for _, day := range aoc.Days() {
		fmt.Fprintln(os.Stderr, day)
	}
}

// selectDays turns the command-line arguments into registered days, in
// the order given. The single argument "all" selects every day.
func selectDays(args []string) ([]int, error) {
	if len(args) == 1 && args[0] == "all" {
		return aoc.Days(), nil
	}
	var days []int
	for _, arg := range args {
		day, err := aoc.ParseDay(arg)
		if err != nil {
			return nil, err
		}
		if _, ok := aoc.Lookup(day); !ok {
			return nil, fmt.Errorf("unknown solution %q", arg)
		}
		days = append(days, day)
	}
	return days, nil
}

type runner struct {
	cfg     *config
	verbose bool
	w       io.Writer // answers go here
}

func (r *runner) runAll(days []int) error {
	for i, day := range days {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		if err := r.run(day); err != nil {
			return fmt.Errorf("day %d: %s", day, err)
		}
	}
	return nil
}

func (r *runner) run(day int) error {
	s, _ := aoc.Lookup(day)
	name := r.cfg.inputFile(day)
	input, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	start := time.Now()
	ans, err := aoc.Run(s, bytes.NewReader(input))
	if err != nil {
		return err
	}
	if r.verbose {
		log.Printf("day %d: solved %s input (%s) in %s",
			day, humanize.Bytes(uint64(len(input))), name, time.Since(start))
	}
	fmt.Fprintf(r.w, "Day %d\n", day)
	return ans.Print(r.w)
}
