// Package meshviewer renders snapshots of a simulated network-on-chip mesh into static images.
package meshviewer

// Status is the occupancy state the simulator reports for a core.
// Only StatusFaulty and StatusBusy carry meaning for classification.
type Status string

const (
	StatusFaulty  Status = "FAULTY"
	StatusBusy    Status = "BUSY"
	StatusHealthy Status = "HEALTHY"
	StatusSpare   Status = "SPARE"
)

// Snapshot is the state of the whole mesh at one point of a simulation run.
type Snapshot struct {
	Title       string
	Width       int
	Height      int
	TotalEnergy float64
	Cores       []Core
}

// Core is a single processing element of the mesh.
type Core struct {
	ID     *int // linear index, informational
	X, Y   int
	Status Status
	TaskID *int
}

// HasTask reports whether a task is mapped onto the core.
func (c *Core) HasTask() bool {
	return c.TaskID != nil
}

// InBounds reports whether (x, y) is a cell of the snapshot's grid.
func (s *Snapshot) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Summary contains aggregate statistics for one rendered snapshot.
type Summary struct {
	Cells       int
	Unknown     int
	Faulty      int
	Occupied    int
	Busy        int
	Spare       int
	OutOfBounds int // cores that match no cell
	Duplicates  int // cores overwritten by a later entry at the same coordinate
}

func (s *Summary) add(c Category) {
	s.Cells++
	switch c {
	case CategoryUnknown:
		s.Unknown++
	case CategoryFault:
		s.Faulty++
	case CategoryOccupied:
		s.Occupied++
	case CategoryBusy:
		s.Busy++
	case CategorySpare:
		s.Spare++
	}
}
