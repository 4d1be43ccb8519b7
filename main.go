package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"screencheck/screenshot"
)

var configFile = flag.String("config", defaultConfigFile, "path to the yaml config file")
var listFile = flag.String("list", "", "file with one screenshot path per line, - for stdin")
var prefix = flag.String("prefix", "", "only check screenshots whose path starts with this prefix")
var threads = flag.Uint("threads", 8, "number of concurrent validations")
var logFile = flag.String("log", "screencheck.log", "location to store the validation log")
var showProgress = flag.Bool("progress", true, "show a progress bar")

func newProgress(cfg config, n int) *progressbar.ProgressBar {
	if !cfg.Progress {
		return progressbar.DefaultSilent(int64(n))
	}
	return progressbar.NewOptions64(int64(n),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("checking screenshots"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func collect(cfg config, args []string) (*collector, error) {
	c := newCollector(cfg.Prefixes)

	if len(*listFile) > 0 {
		var list io.Reader = os.Stdin
		if *listFile != "-" {
			f, err := os.Open(*listFile)
			if err != nil {
				return c, fmt.Errorf("failed to open path list: %w", err)
			}
			defer f.Close()
			list = f
		}
		if err := c.addList(list); err != nil {
			return c, err
		}
	}

	if len(args) == 0 && len(*listFile) == 0 {
		args = []string{"."}
	}
	for _, arg := range args {
		if err := c.addPath(arg); err != nil {
			return c, err
		}
	}

	return c, nil
}

func main() {
	flag.Parse()

	usage := func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: screencheck [flags] [file|dir|archive.zip ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	configRequired := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configRequired = true
		}
	})

	cfg, err := loadConfig(*configFile, configRequired)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n\n", err)
		usage()
	}
	cfg.applyFlags()
	if err := cfg.validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n\n", err)
		usage()
	}

	logStream, err := os.OpenFile(cfg.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(2)
	}
	defer logStream.Close()
	log.SetOutput(logStream)

	c, err := collect(cfg, flag.Args())
	defer c.Close()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to collect screenshots: %v\n", err)
		os.Exit(2)
	}

	sources := c.Sources()
	log.Printf("checking %d screenshots with %d threads\n", len(sources), cfg.Threads)

	validator := screenshot.Validator{OnFile: func(name string) {
		log.Println(name)
	}}
	results := run(sources, cfg.Threads, validator, newProgress(cfg, len(sources)))

	if report(os.Stdout, results) > 0 {
		_ = c.Close()
		_ = logStream.Close()
		os.Exit(1)
	}
}
