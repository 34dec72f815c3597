package meshviewer

import "testing"

func TestNewTopology(t *testing.T) {
	topo := NewTopology(3, 2)

	if len(topo.Nodes) != 6 {
		t.Fatalf("expected 6 nodes, got %d", len(topo.Nodes))
	}
	// w*(h-1) vertical + h*(w-1) horizontal edges
	if want := 3*1 + 2*2; len(topo.Edges) != want {
		t.Fatalf("expected %d edges, got %d", want, len(topo.Edges))
	}
	if topo.Nodes[0] != (Node{0, 0}) || topo.Nodes[1] != (Node{0, 1}) || topo.Nodes[2] != (Node{1, 0}) {
		t.Fatalf("unexpected node order: %v", topo.Nodes[:3])
	}
	for _, e := range topo.Edges {
		dx, dy := e.To.X-e.From.X, e.To.Y-e.From.Y
		if dx+dy != 1 || dx < 0 || dy < 0 {
			t.Fatalf("edge %v does not join 4-neighbours", e)
		}
	}
}

func TestNewTopologyEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		topo := NewTopology(dims[0], dims[1])
		if len(topo.Nodes) != 0 || len(topo.Edges) != 0 {
			t.Fatalf("expected empty topology for %v", dims)
		}
	}
}

func TestPositionInvertsY(t *testing.T) {
	topo := NewTopology(3, 3)
	x, y := topo.Position(Node{X: 2, Y: 1})
	if x != 2 || y != -1 {
		t.Fatalf("Position = (%v, %v), want (2, -1)", x, y)
	}
	_, y0 := topo.Position(Node{X: 0, Y: 0})
	_, y2 := topo.Position(Node{X: 0, Y: 2})
	if !(y2 < y0) {
		t.Fatalf("expected larger y to sit lower, got %v >= %v", y2, y0)
	}
}

func TestCoreMapLastEntryWins(t *testing.T) {
	m := NewCoreMap([]Core{
		{X: 1, Y: 1, Status: StatusBusy, TaskID: intPtr(1)},
		{X: 0, Y: 0, Status: StatusHealthy},
		{X: 1, Y: 1, Status: StatusFaulty},
	})

	if m.Len() != 2 {
		t.Fatalf("expected 2 coordinates, got %d", m.Len())
	}
	if m.Duplicates() != 1 {
		t.Fatalf("expected 1 duplicate, got %d", m.Duplicates())
	}
	if c := m.At(1, 1); c == nil || c.Status != StatusFaulty {
		t.Fatalf("expected the later FAULTY core at (1,1), got %+v", c)
	}
	if m.At(2, 2) != nil {
		t.Fatal("expected no core at (2,2)")
	}
}

func TestBuildGridViewClassifiesEveryCell(t *testing.T) {
	s := &Snapshot{
		Title:       "Initial Mapping",
		Width:       3,
		Height:      3,
		TotalEnergy: 123.456,
		Cores: []Core{
			{X: 0, Y: 0, Status: StatusFaulty, TaskID: intPtr(9)},
			{X: 1, Y: 0, Status: StatusBusy, TaskID: intPtr(4)},
			{X: 2, Y: 0, Status: StatusBusy},
			{X: 0, Y: 1, Status: StatusHealthy},
			{X: 5, Y: 5, Status: StatusBusy, TaskID: intPtr(1)},
		},
	}

	view := BuildGridView(s, DefaultPalette())

	if len(view.Cells) != 9 {
		t.Fatalf("expected 9 cells, got %d", len(view.Cells))
	}
	if view.Title != "Initial Mapping\nTotal Energy: 123.46" {
		t.Fatalf("unexpected title %q", view.Title)
	}

	byNode := make(map[Node]Cell, len(view.Cells))
	for _, c := range view.Cells {
		byNode[c.Node] = c
	}
	check := func(n Node, category Category, label string) {
		t.Helper()
		c, ok := byNode[n]
		if !ok {
			t.Fatalf("no cell for %v", n)
		}
		if c.Category != category || c.Label != label {
			t.Fatalf("cell %v = %s/%q, want %s/%q", n, c.Category, c.Label, category, label)
		}
		if c.Color != DefaultPalette().Color(category) {
			t.Fatalf("cell %v has color %v", n, c.Color)
		}
	}
	check(Node{0, 0}, CategoryFault, "FAULT")
	check(Node{1, 0}, CategoryOccupied, "T4")
	check(Node{2, 0}, CategoryBusy, "BUSY")
	check(Node{0, 1}, CategorySpare, "Spare")
	for _, n := range []Node{{1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		check(n, CategoryUnknown, "?")
	}

	sum := view.Summary
	if sum.Cells != 9 || sum.Faulty != 1 || sum.Occupied != 1 || sum.Busy != 1 || sum.Spare != 1 || sum.Unknown != 5 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if sum.OutOfBounds != 1 {
		t.Fatalf("expected the (5,5) core to be out of bounds, got %d", sum.OutOfBounds)
	}
}

func TestBuildGridViewIgnoresOutOfRangeCore(t *testing.T) {
	s := &Snapshot{
		Title:  "edge",
		Width:  3,
		Height: 3,
		Cores:  []Core{{X: 5, Y: 5, Status: StatusFaulty}, {X: -1, Y: 0, Status: StatusFaulty}},
	}
	view := BuildGridView(s, DefaultPalette())
	for _, c := range view.Cells {
		if c.Category != CategoryUnknown || c.Core != nil {
			t.Fatalf("cell %v matched an out-of-range core", c.Node)
		}
	}
	if view.Summary.OutOfBounds != 2 {
		t.Fatalf("expected 2 out-of-bounds cores, got %d", view.Summary.OutOfBounds)
	}
}

func TestBuildGridViewUsesSuppliedPalette(t *testing.T) {
	palette := DefaultPalette()
	palette.Unknown = NamedColors["purple"]

	view := BuildGridView(&Snapshot{Width: 1, Height: 1}, palette)
	if view.Cells[0].Color != NamedColors["purple"] {
		t.Fatalf("expected custom unknown color, got %v", view.Cells[0].Color)
	}
}
