package meshviewer

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Category is the visual class of a grid cell.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryFault
	CategoryOccupied
	CategoryBusy
	CategorySpare
)

func (c Category) String() string {
	switch c {
	case CategoryUnknown:
		return "UNKNOWN"
	case CategoryFault:
		return "FAULT"
	case CategoryOccupied:
		return "OCCUPIED"
	case CategoryBusy:
		return "BUSY"
	case CategorySpare:
		return "SPARE"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// classificationRule maps a predicate on the (possibly missing) core to a category.
type classificationRule struct {
	category Category
	matches  func(c *Core) bool
}

// classificationRules is evaluated top to bottom; the first match wins.
// The unknown rule must stay first so later predicates can dereference the core.
var classificationRules = []classificationRule{
	{CategoryUnknown, func(c *Core) bool { return c == nil }},
	{CategoryFault, func(c *Core) bool { return c.Status == StatusFaulty }},
	{CategoryOccupied, func(c *Core) bool { return c.HasTask() }},
	{CategoryBusy, func(c *Core) bool { return c.Status == StatusBusy }},
	{CategorySpare, func(*Core) bool { return true }},
}

// ClassificationOrder returns the categories in the order they are tested.
func ClassificationOrder() []Category {
	order := make([]Category, len(classificationRules))
	for i, rule := range classificationRules {
		order[i] = rule.category
	}
	return order
}

// Classify returns the category of a cell holding core, or CategoryUnknown when core is nil.
func Classify(core *Core) Category {
	for _, rule := range classificationRules {
		if rule.matches(core) {
			return rule.category
		}
	}
	return CategorySpare
}

// Label returns the text drawn inside a cell of the given category.
func Label(category Category, core *Core) string {
	switch category {
	case CategoryFault:
		return "FAULT"
	case CategoryOccupied:
		if core != nil && core.TaskID != nil {
			return fmt.Sprintf("T%d", *core.TaskID)
		}
		return "T?"
	case CategoryBusy:
		return "BUSY"
	case CategorySpare:
		return "Spare"
	}
	return "?"
}

// Palette holds the fill color of each cell category.
type Palette struct {
	Unknown  drawing.Color
	Fault    drawing.Color
	Occupied drawing.Color
	Busy     drawing.Color
	Spare    drawing.Color
}

// DefaultPalette returns white, red, light green, orange and light gray.
func DefaultPalette() Palette {
	return Palette{
		Unknown:  NamedColors["white"],
		Fault:    NamedColors["red"],
		Occupied: NamedColors["lightgreen"],
		Busy:     NamedColors["orange"],
		Spare:    NamedColors["lightgray"],
	}
}

// Color returns the fill color for category.
func (p Palette) Color(category Category) drawing.Color {
	switch category {
	case CategoryFault:
		return p.Fault
	case CategoryOccupied:
		return p.Occupied
	case CategoryBusy:
		return p.Busy
	case CategorySpare:
		return p.Spare
	}
	return p.Unknown
}
