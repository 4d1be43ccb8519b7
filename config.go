package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".screencheck.yaml"

type config struct {
	Prefixes []string `yaml:"prefixes"`
	Threads  uint     `yaml:"threads"`
	Log      string   `yaml:"log"`
	Progress bool     `yaml:"progress"`
}

func defaultConfig() config {
	return config{
		Threads:  8,
		Log:      "screencheck.log",
		Progress: true,
	}
}

// loadConfig reads a YAML config on top of the defaults. A missing file is
// only an error when the path was asked for explicitly. The result is not
// validated until flags are applied.
func loadConfig(path string, required bool) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// applyFlags overrides the config with every flag set on the command line.
func (c *config) applyFlags() {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prefix":
			c.Prefixes = []string{*prefix}
		case "threads":
			c.Threads = *threads
		case "log":
			c.Log = *logFile
		case "progress":
			c.Progress = *showProgress
		}
	})
}

func (c config) validate() error {
	if c.Threads == 0 {
		return fmt.Errorf("threads must be at least 1")
	}
	if len(c.Log) == 0 {
		return fmt.Errorf("log location must not be empty")
	}
	return nil
}
