package meshviewer

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// MinComparisonSnapshots is the number of snapshots needed for an energy comparison.
const MinComparisonSnapshots = 2

// Bar is one category of the energy comparison chart.
type Bar struct {
	Label      string
	Value      float64
	Color      drawing.Color
	Annotation string
}

// Comparison is a bar chart of total energy per snapshot.
type Comparison struct {
	Bars []Bar
}

// DefaultBarPalette returns green, orange and red.
func DefaultBarPalette() []drawing.Color {
	return []drawing.Color{NamedColors["green"], NamedColors["orange"], NamedColors["red"]}
}

// BuildComparison returns one bar per snapshot, in input order. Colors cycle
// through palette when there are more bars than colors. The second result is
// false when there are fewer than MinComparisonSnapshots snapshots.
func BuildComparison(snapshots []Snapshot, palette []drawing.Color) (*Comparison, bool) {
	if len(snapshots) < MinComparisonSnapshots {
		return nil, false
	}
	if len(palette) == 0 {
		palette = DefaultBarPalette()
	}

	c := &Comparison{Bars: make([]Bar, len(snapshots))}
	for i, s := range snapshots {
		c.Bars[i] = Bar{
			Label:      s.Title,
			Value:      s.TotalEnergy,
			Color:      palette[i%len(palette)],
			Annotation: fmt.Sprintf("%.1f", s.TotalEnergy),
		}
	}
	return c, true
}

// MaxValue returns the tallest bar's value, or 0.
func (c *Comparison) MaxValue() float64 {
	var max float64
	for _, b := range c.Bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}
