package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/advent2020/aoc"
	"github.com/vaughan0/go-ini"
)

const (
	defaultConfigFile = "advent.ini"
	defaultInputDir   = "inputs"
)

// config says where to find each day's input. A config file looks like
//
//	[advent]
//	inputdir = /home/me/aoc/2020
//
//	[inputs]
//	7 = /tmp/day7-alternate.txt
type config struct {
	inputDir string
	inputs   map[int]string
}

func (c *config) inputFile(day int) string {
	if name, ok := c.inputs[day]; ok {
		return name
	}
	return filepath.Join(c.inputDir, fmt.Sprintf("%02d.txt", day))
}

// loadConfig reads the named ini file. If optional is set, a missing file
// gives the default configuration instead of an error.
func loadConfig(name string, optional bool) (*config, error) {
	f, err := os.Open(name)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return &config{inputDir: defaultInputDir}, nil
		}
		return nil, fmt.Errorf("error loading config: %s", err)
	}
	defer f.Close()
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	return cfg, nil
}

func parseConfig(r io.Reader) (*config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	cfg := &config{
		inputDir: defaultInputDir,
		inputs:   make(map[int]string),
	}
	if dir, ok := file.Get("advent", "inputdir"); ok && dir != "" {
		cfg.inputDir = dir
	}
	for key, name := range file.Section("inputs") {
		day, err := aoc.ParseDay(key)
		if err != nil {
			return nil, fmt.Errorf("[inputs]: %s", err)
		}
		cfg.inputs[day] = name
	}
	return cfg, nil
}
