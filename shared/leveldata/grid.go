package leveldata

type Cell uint8

const (
	CellEmpty Cell = iota
	CellFull
)

// CollisionGrid is a row-major solidity map. Row 0 is the top row of the map.
type CollisionGrid struct {
	Width  int
	Height int
	cells  []Cell
}

func NewCollisionGrid(width, height int) *CollisionGrid {
	return &CollisionGrid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *CollisionGrid) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Width && row < g.Height
}

// At returns CellEmpty for coordinates outside the grid.
func (g *CollisionGrid) At(col, row int) Cell {
	if !g.inBounds(col, row) {
		return CellEmpty
	}
	return g.cells[row*g.Width+col]
}

func (g *CollisionGrid) Set(col, row int, c Cell) {
	if !g.inBounds(col, row) {
		return
	}
	g.cells[row*g.Width+col] = c
}

func (g *CollisionGrid) IsFull(col, row int) bool {
	return g.At(col, row) == CellFull
}

func (g *CollisionGrid) FullCount() int {
	n := 0
	for _, c := range g.cells {
		if c == CellFull {
			n++
		}
	}
	return n
}

// Run is a horizontal stretch of full cells on one row.
type Run struct {
	Row      int
	StartCol int
	EndCol   int // inclusive
}

// Runs returns every maximal horizontal run of full cells, top row first.
func (g *CollisionGrid) Runs() []Run {
	var runs []Run
	for row := 0; row < g.Height; row++ {
		start := -1
		for col := 0; col <= g.Width; col++ {
			full := col < g.Width && g.IsFull(col, row)
			switch {
			case full && start < 0:
				start = col
			case !full && start >= 0:
				runs = append(runs, Run{Row: row, StartCol: start, EndCol: col - 1})
				start = -1
			}
		}
	}
	return runs
}
