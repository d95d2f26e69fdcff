package server

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gofrs/flock"
)

// ControlCounter hands out monotonically increasing interchange control
// numbers backed by a small state file. A flock sibling file guards the
// read-increment-write cycle against concurrent service processes; the
// mutex guards it within one process.
type ControlCounter struct {
	path     string
	fileLock *flock.Flock
	mu       sync.Mutex
}

// NewControlCounter creates a counter backed by the given file. The file
// is created on first use.
func NewControlCounter(path string) *ControlCounter {
	return &ControlCounter{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// Next returns the next control number, persisting the new value before
// returning. Numbers start at 1.
func (c *ControlCounter) Next() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.fileLock.Lock(); err != nil {
		return 0, err
	}
	defer c.fileLock.Unlock()

	current := 0
	if data, err := os.ReadFile(c.path); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			current = n
		}
	}
	next := current + 1
	if err := os.WriteFile(c.path, []byte(strconv.Itoa(next)+"\n"), 0o644); err != nil {
		return 0, err
	}
	return next, nil
}
