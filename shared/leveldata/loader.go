package leveldata

import (
	"fmt"
	"io/fs"
)

// Set is the fixed, ordered list of level documents compiled into the game.
type Set struct {
	fsys  fs.FS
	paths []string
}

func NewSet(fsys fs.FS, paths ...string) *Set {
	return &Set{fsys: fsys, paths: paths}
}

func (s *Set) Len() int { return len(s.paths) }

// Wrap maps any index onto the set, so the level after the last is the first.
func (s *Set) Wrap(index int) int {
	n := len(s.paths)
	if n == 0 {
		return 0
	}
	return ((index % n) + n) % n
}

// Load compiles the level at index, wrapped onto the set.
func (s *Set) Load(index int) (*Level, error) {
	if len(s.paths) == 0 {
		return nil, fmt.Errorf("level set is empty")
	}
	index = s.Wrap(index)
	return LoadFile(s.fsys, s.paths[index], index)
}

// Validate compiles every level once so content defects surface at startup.
func (s *Set) Validate() error {
	for i := range s.paths {
		if _, err := s.Load(i); err != nil {
			return err
		}
	}
	return nil
}
