// Package levels embeds the level set and its tileset.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/ferrisdive/shared/leveldata"
)

//go:embed *.tmx *.png
var FS embed.FS

// Paths lists the embedded TMX documents in play order (file name order).
func Paths() []string {
	paths, err := fs.Glob(FS, "*.tmx")
	if err != nil {
		panic(fmt.Sprintf("Failed to list levels: %v", err))
	}
	sort.Strings(paths)
	return paths
}

func NewSet() *leveldata.Set {
	return leveldata.NewSet(FS, Paths()...)
}

// MustLoadAll compiles every level once and panics on the first content
// error, so a broken level aborts startup instead of a later level change.
func MustLoadAll(set *leveldata.Set) []*leveldata.Level {
	if set.Len() == 0 {
		panic("No level files found in assets/levels")
	}
	out := make([]*leveldata.Level, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		lvl, err := set.Load(i)
		if err != nil {
			panic(err)
		}
		out = append(out, lvl)
	}
	return out
}

// Name is the display name of the level at index, taken from its file name.
func Name(index int) string {
	paths := Paths()
	if len(paths) == 0 {
		return ""
	}
	name := paths[((index%len(paths))+len(paths))%len(paths)]
	return name[:len(name)-len(path.Ext(name))]
}
