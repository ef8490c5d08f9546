package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestSelectDays(t *testing.T) {
	all, err := selectDays([]string{"all"})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 12 {
		t.Errorf("got %d days for all; want 12", len(all))
	}
	for i, day := range all {
		if day != i+1 {
			t.Fatalf("all days: got %v", all)
		}
	}

	got, err := selectDays([]string{"7", "day01", "12"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(got, []int{7, 1, 12}); len(diff) > 0 {
		t.Errorf("got %v; want [7 1 12]", got)
	}

	for _, args := range [][]string{{"13"}, {"x"}, {"1", "all"}} {
		if _, err := selectDays(args); err == nil {
			t.Errorf("selectDays(%q): got nil error", args)
		}
	}
}

func TestParseConfig(t *testing.T) {
	const in = `
[advent]
inputdir = /data/aoc

[inputs]
7 = /tmp/seven.txt
day12 = twelve.txt
`
	cfg, err := parseConfig(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		day  int
		want string
	}{
		{7, "/tmp/seven.txt"},
		{12, "twelve.txt"},
		{3, filepath.Join("/data/aoc", "03.txt")},
	} {
		if got := cfg.inputFile(tt.day); got != tt.want {
			t.Errorf("inputFile(%d): got %q; want %q", tt.day, got, tt.want)
		}
	}

	if _, err := parseConfig(strings.NewReader("[inputs]\nseven = x\n")); err == nil {
		t.Error("got nil error for bad day name")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "advent.ini")
	cfg, err := loadConfig(missing, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.inputFile(1), filepath.Join(defaultInputDir, "01.txt"); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if _, err := loadConfig(missing, false); err == nil {
		t.Error("got nil error for missing required config")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "06.txt")
	if err := os.WriteFile(name, []byte("abc\n\na\nb\nc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r := runner{cfg: &config{inputDir: dir}, w: &out}

	if err := r.run(6); err != nil {
		t.Errorf("run(6): %s", err)
	}
	if got, want := out.String(), "Day 6\nPart 1: 6\nPart 2: 3\n"; got != want {
		t.Errorf("got output %q; want %q", got, want)
	}
	if err := r.run(7); err == nil {
		t.Error("run(7): got nil error for missing input")
	}
}

func TestRunVerbose(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "06.txt")
	if err := os.WriteFile(name, []byte("abc\n\na\nb\nc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	r := runner{cfg: &config{inputDir: dir}, verbose: true, w: io.Discard}
	if err := r.run(6); err != nil {
		t.Fatal(err)
	}
	got := logs.String()
	for _, want := range []string{"day 6: solved 12 B input", name} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	for name, in := range map[string]string{
		"06.txt": "a\n",
		"12.txt": "F10\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(in), 0644); err != nil {
			t.Fatal(err)
		}
	}
	var out bytes.Buffer
	r := runner{cfg: &config{inputDir: dir}, w: &out}
	if err := r.runAll([]int{12, 6}); err != nil {
		t.Fatal(err)
	}
	want := "Day 12\nPart 1: 10\nPart 2: 110\n\nDay 6\nPart 1: 1\nPart 2: 1\n"
	if got := out.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	err := r.runAll([]int{6, 1})
	if err == nil || !strings.HasPrefix(err.Error(), "day 1: ") {
		t.Errorf("got %v; want day 1 error", err)
	}
}

func TestProfile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prof.out")
	errBoom := errors.New("boom")
	if err := profile(name, func() error { return errBoom }); err != errBoom {
		t.Fatalf("got %v; want %v", err, errBoom)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("profile is empty after a failed run")
	}

	called := false
	if err := profile("", func() error { called = true; return nil }); err != nil || !called {
		t.Errorf("no profile: got (%v, called=%t)", err, called)
	}
}
