package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/schollz/progressbar/v3"

	"screencheck/screenshot"
)

type result struct {
	path string
	err  error
}

// readHeader returns at most screenshot.HeaderSize leading bytes. Short
// files are not an error here, the validator decides what they are.
func readHeader(s source) ([]byte, error) {
	r, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	defer r.Close()

	reader := bufio.NewReader(r)
	buf, err := reader.Peek(screenshot.HeaderSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not read png header of %s: %w", s.path, err)
	}

	return buf, nil
}

func check(v screenshot.Validator, s source) result {
	buf, err := readHeader(s)
	if err != nil {
		return result{path: s.path, err: err}
	}
	return result{path: s.path, err: v.Validate(s.path, buf)}
}

// run validates sources on threads workers. results[i] belongs to sources[i].
func run(sources []source, threads uint, v screenshot.Validator, progress *progressbar.ProgressBar) []result {
	results := make([]result, len(sources))
	if len(sources) == 0 {
		return results
	}
	jobs := make(chan int)

	go func() {
		for i := range sources {
			jobs <- i
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	wg.Add(int(threads))

	thread := func() {
		defer wg.Done()

		for {
			i, ok := <-jobs
			if !ok {
				return
			}
			results[i] = check(v, sources[i])
			if results[i].err != nil {
				log.Println("invalid screenshot", sources[i].path, results[i].err)
			}
			_ = progress.Add(1)
		}
	}

	for i := uint(0); i < threads; i++ {
		go thread()
	}

	wg.Wait()

	_ = progress.Finish()

	return results
}

// report prints one line per failure in result order and returns the number
// of failures.
func report(w io.Writer, results []result) int {
	invalid := 0
	for _, r := range results {
		if r.err == nil {
			continue
		}
		invalid++
		_, _ = fmt.Fprintf(w, "Invalid screenshot: %v\n", r.err)
	}

	_, _ = fmt.Fprintf(w, "checked %d screenshots, %d invalid\n", len(results), invalid)
	return invalid
}
