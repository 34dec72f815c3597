package meshviewer

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Node is a grid coordinate.
type Node struct {
	X, Y int
}

// Edge connects two 4-neighbour nodes. It is used for layout only.
type Edge struct {
	From, To Node
}

// Topology is a width x height mesh with 4-neighbour adjacency.
type Topology struct {
	Width  int
	Height int
	Nodes  []Node
	Edges  []Edge
}

// NewTopology builds the mesh. Nodes are ordered by x, then y.
// Non-positive dimensions produce an empty topology.
func NewTopology(width, height int) *Topology {
	t := &Topology{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return t
	}

	t.Nodes = make([]Node, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			n := Node{X: x, Y: y}
			t.Nodes = append(t.Nodes, n)
			if x+1 < width {
				t.Edges = append(t.Edges, Edge{From: n, To: Node{X: x + 1, Y: y}})
			}
			if y+1 < height {
				t.Edges = append(t.Edges, Edge{From: n, To: Node{X: x, Y: y + 1}})
			}
		}
	}
	return t
}

// Position returns the layout coordinates of n. The vertical axis is inverted
// so that increasing y is drawn further down, with (0,0) at the top left.
func (t *Topology) Position(n Node) (float64, float64) {
	return float64(n.X), -float64(n.Y)
}

// CoreMap indexes cores by coordinate.
type CoreMap struct {
	cores      map[Node]*Core
	duplicates int
}

// NewCoreMap indexes cores. When two cores share a coordinate the later one wins.
func NewCoreMap(cores []Core) *CoreMap {
	m := &CoreMap{cores: make(map[Node]*Core, len(cores))}
	for i := range cores {
		n := Node{X: cores[i].X, Y: cores[i].Y}
		if _, ok := m.cores[n]; ok {
			m.duplicates++
		}
		m.cores[n] = &cores[i]
	}
	return m
}

// At returns the core at (x, y), or nil.
func (m *CoreMap) At(x, y int) *Core {
	return m.cores[Node{X: x, Y: y}]
}

// Len returns the number of distinct coordinates.
func (m *CoreMap) Len() int {
	return len(m.cores)
}

// Duplicates returns how many cores were overwritten by a later entry.
func (m *CoreMap) Duplicates() int {
	return m.duplicates
}

// Cell is one classified node of the grid.
type Cell struct {
	Node     Node
	Core     *Core
	Category Category
	Label    string
	Color    drawing.Color
}

// GridView is everything needed to draw one snapshot.
type GridView struct {
	Title    string
	Topology *Topology
	Cells    []Cell
	Summary  Summary
}

// GridTitle returns the two-line title of a snapshot image.
func GridTitle(s *Snapshot) string {
	return fmt.Sprintf("%s\nTotal Energy: %.2f", s.Title, s.TotalEnergy)
}

// BuildGridView classifies every cell of the snapshot's grid.
func BuildGridView(s *Snapshot, palette Palette) *GridView {
	topo := NewTopology(s.Width, s.Height)
	cores := NewCoreMap(s.Cores)

	view := &GridView{
		Title:    GridTitle(s),
		Topology: topo,
		Cells:    make([]Cell, len(topo.Nodes)),
	}
	for i, n := range topo.Nodes {
		core := cores.At(n.X, n.Y)
		category := Classify(core)
		view.Cells[i] = Cell{
			Node:     n,
			Core:     core,
			Category: category,
			Label:    Label(category, core),
			Color:    palette.Color(category),
		}
		view.Summary.add(category)
	}

	for n := range cores.cores {
		if !s.InBounds(n.X, n.Y) {
			view.Summary.OutOfBounds++
		}
	}
	view.Summary.Duplicates = cores.Duplicates()
	return view
}
