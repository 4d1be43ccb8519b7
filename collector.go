package main

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type source struct {
	path string
	open func() (io.ReadCloser, error)
}

// collector gathers the screenshots to check. Paths are matched with forward
// slashes so prefixes from git output work on every platform.
type collector struct {
	prefixes []string
	archives []*zip.ReadCloser
	seen     map[string]bool
	sources  []source
}

func newCollector(prefixes []string) *collector {
	return &collector{prefixes: prefixes, seen: map[string]bool{}}
}

func (c *collector) wants(name string) bool {
	name = filepath.ToSlash(name)
	if !strings.HasSuffix(name, ".png") {
		return false
	}
	if len(c.prefixes) == 0 {
		return true
	}
	for _, prefix := range c.prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (c *collector) add(s source) {
	if c.seen[s.path] {
		return
	}
	c.seen[s.path] = true
	c.sources = append(c.sources, s)
}

func (c *collector) addFile(name string) {
	name = filepath.Clean(name)
	if !c.wants(name) {
		return
	}
	c.add(source{path: name, open: func() (io.ReadCloser, error) {
		return os.Open(name)
	}})
}

func (c *collector) addDir(root string) error {
	return filepath.WalkDir(root, c.visit)
}

// visit is the WalkDir callback. A directory that cannot be read becomes a
// failing source of its own so the rest of the tree is still checked.
func (c *collector) visit(name string, d fs.DirEntry, err error) error {
	if err != nil {
		if c.mayContain(name) {
			c.add(source{path: name, open: func() (io.ReadCloser, error) {
				return nil, fmt.Errorf("failed to walk %s: %w", name, err)
			}})
		}
		if d != nil && d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if d.IsDir() {
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		return nil
	}
	c.addFile(name)
	return nil
}

// mayContain reports whether a directory could hold a wanted screenshot.
func (c *collector) mayContain(dir string) bool {
	dir = filepath.ToSlash(filepath.Clean(dir))
	if len(c.prefixes) == 0 || dir == "." {
		return true
	}
	dir += "/"
	for _, prefix := range c.prefixes {
		if strings.HasPrefix(dir, prefix) || strings.HasPrefix(prefix, dir) {
			return true
		}
	}
	return false
}

// addArchive adds every matching entry of a zip file. The archive stays open
// until Close.
func (c *collector) addArchive(name string) error {
	archive, err := zip.OpenReader(name)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	c.archives = append(c.archives, archive)

	// entries are addressed like files below a directory named after the
	// archive, so the archive name never ends up in the base name
	for _, file := range archive.File {
		if file.FileInfo().IsDir() || !c.wants(file.Name) {
			continue
		}
		c.add(source{path: filepath.Join(name, filepath.FromSlash(file.Name)), open: file.Open})
	}
	return nil
}

// addList adds one path per line, as printed by `git diff --name-only`.
func (c *collector) addList(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		c.addFile(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read path list: %w", err)
	}
	return nil
}

// addPath dispatches on what name is. Paths that cannot be stat'ed are kept
// as files so the read failure gets reported against them.
func (c *collector) addPath(name string) error {
	info, err := os.Stat(name)
	switch {
	case err == nil && info.IsDir():
		return c.addDir(name)
	case err == nil && strings.HasSuffix(strings.ToLower(name), ".zip"):
		return c.addArchive(name)
	default:
		c.addFile(name)
		return nil
	}
}

// Sources returns the collected screenshots sorted by path.
func (c *collector) Sources() []source {
	sort.Slice(c.sources, func(i, j int) bool {
		return c.sources[i].path < c.sources[j].path
	})
	return c.sources
}

func (c *collector) Close() error {
	var first error
	for _, archive := range c.archives {
		if err := archive.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.archives = nil
	return first
}
