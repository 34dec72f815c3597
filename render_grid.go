package meshviewer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	minLabelFontSize = 5.0
	nodeRadiusRatio  = 0.35 // of the node spacing
	nodeSegments     = 64
	titleLineSpacing = 1.4
)

// GridStyle configures the snapshot image.
type GridStyle struct {
	Width         int
	Height        int
	Margin        int
	Palette       Palette
	Background    drawing.Color
	EdgeColor     drawing.Color
	EdgeWidth     float64
	OutlineColor  drawing.Color
	LabelColor    drawing.Color
	LabelFontSize float64
	TitleColor    drawing.Color
	TitleFontSize float64
}

// DefaultGridStyle returns an 800x800 image with gray edges and bold labels.
func DefaultGridStyle() GridStyle {
	return GridStyle{
		Width:         800,
		Height:        800,
		Margin:        40,
		Palette:       DefaultPalette(),
		Background:    NamedColors["white"],
		EdgeColor:     NamedColors["gray"],
		EdgeWidth:     1.5,
		OutlineColor:  NamedColors["darkgray"],
		LabelColor:    NamedColors["black"],
		LabelFontSize: 12,
		TitleColor:    NamedColors["black"],
		TitleFontSize: 14,
	}
}

// Validate reports whether the style can produce an image.
func (s GridStyle) Validate() error {
	if s.Width <= 2*s.Margin || s.Height <= 2*s.Margin {
		return NewError(CodeInvalidConfig, fmt.Sprintf("grid image %dx%d too small for margin %d", s.Width, s.Height, s.Margin))
	}
	if s.Margin < 0 {
		return NewError(CodeInvalidConfig, "grid margin is negative")
	}
	if s.LabelFontSize <= 0 || s.TitleFontSize <= 0 {
		return NewError(CodeInvalidConfig, "grid font sizes must be positive")
	}
	return nil
}

// RenderGrid draws a classified grid and encodes it in format.
func RenderGrid(view *GridView, style GridStyle, format Format) ([]byte, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	regular, bold, err := loadFonts()
	if err != nil {
		return nil, WrapError(CodeRenderFailure, "load fonts", err)
	}

	r, err := format.provider()(style.Width, style.Height)
	if err != nil {
		return nil, WrapError(CodeRenderFailure, "create renderer", err)
	}

	fillRect(r, 0, 0, style.Width, style.Height, style.Background)
	titleBottom := drawTitle(r, regular, view.Title, style, format)
	layout := newGridLayout(view.Topology, style, titleBottom)
	drawEdges(r, view.Topology, layout, style)
	drawCells(r, bold, view, layout, style, format)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, WrapError(CodeRenderFailure, "encode grid", err)
	}
	data, err := format.finish(buf.Bytes())
	if err != nil {
		return nil, WrapError(CodeRenderFailure, "encode grid", err)
	}
	return data, nil
}

// gridLayout maps layout coordinates to pixels.
type gridLayout struct {
	originX float64 // pixel of layout x = 0
	originY float64 // pixel of layout y = 0
	spacing float64
	radius  float64
}

func newGridLayout(t *Topology, style GridStyle, top int) gridLayout {
	cols := math.Max(float64(t.Width), 1)
	rows := math.Max(float64(t.Height), 1)

	availW := float64(style.Width - 2*style.Margin)
	availH := math.Max(float64(style.Height-top-style.Margin), 1)
	spacing := math.Min(availW/cols, availH/rows)

	left := float64(style.Margin) + (availW-spacing*cols)/2
	upper := float64(top) + (availH-spacing*rows)/2
	return gridLayout{
		originX: left + spacing/2,
		originY: upper + spacing/2,
		spacing: spacing,
		radius:  spacing * nodeRadiusRatio,
	}
}

func (l gridLayout) pixel(t *Topology, n Node) (int, int) {
	px, py := t.Position(n)
	return int(math.Round(l.originX + px*l.spacing)), int(math.Round(l.originY - py*l.spacing))
}

func fillRect(r chart.Renderer, left, top, right, bottom int, c drawing.Color) {
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.LineTo(left, top)
	r.Close()
	r.Fill()
}

// drawTitle writes each title line centered and returns the y below the last line.
func drawTitle(r chart.Renderer, font *truetype.Font, title string, style GridStyle, format Format) int {
	r.SetFont(font)
	r.SetFontSize(style.TitleFontSize)
	r.SetFontColor(style.TitleColor)

	lineHeight := int(math.Ceil(style.TitleFontSize * r.GetDPI() / 72 * titleLineSpacing))
	y := style.Margin / 2
	for _, line := range strings.Split(title, "\n") {
		y += lineHeight
		tb := r.MeasureText(line)
		r.Text(format.text(line), (style.Width-tb.Width())/2, y)
	}
	return y + lineHeight/2
}

func drawEdges(r chart.Renderer, t *Topology, l gridLayout, style GridStyle) {
	if len(t.Edges) == 0 {
		return
	}
	r.SetStrokeColor(style.EdgeColor)
	r.SetStrokeWidth(style.EdgeWidth)
	for _, e := range t.Edges {
		x1, y1 := l.pixel(t, e.From)
		x2, y2 := l.pixel(t, e.To)
		r.MoveTo(x1, y1)
		r.LineTo(x2, y2)
	}
	r.Stroke()
}

func drawCells(r chart.Renderer, font *truetype.Font, view *GridView, l gridLayout, style GridStyle, format Format) {
	maxLabelWidth := int(l.radius * 1.8)
	for _, cell := range view.Cells {
		x, y := l.pixel(view.Topology, cell.Node)

		r.SetFillColor(cell.Color)
		r.SetStrokeColor(style.OutlineColor)
		r.SetStrokeWidth(1)
		nodePath(r, l.radius, x, y)
		r.FillStroke()

		r.SetFont(font)
		r.SetFontColor(style.LabelColor)
		fitFontSize(r, cell.Label, style.LabelFontSize, maxLabelWidth)
		tb := r.MeasureText(cell.Label)
		r.Text(format.text(cell.Label), x-tb.Width()/2, y+tb.Height()/2)
	}
}

// nodePath traces a circle of radius around (x, y) as a closed polygon.
func nodePath(r chart.Renderer, radius float64, x, y int) {
	for i := 0; i <= nodeSegments; i++ {
		theta := 2 * math.Pi * float64(i) / nodeSegments
		px := x + int(math.Round(radius*math.Cos(theta)))
		py := y + int(math.Round(radius*math.Sin(theta)))
		if i == 0 {
			r.MoveTo(px, py)
			continue
		}
		r.LineTo(px, py)
	}
	r.Close()
}

// fitFontSize shrinks the renderer's font until text fits in maxWidth pixels.
func fitFontSize(r chart.Renderer, text string, size float64, maxWidth int) float64 {
	for ; size > minLabelFontSize; size -= 0.5 {
		r.SetFontSize(size)
		if r.MeasureText(text).Width() <= maxWidth {
			return size
		}
	}
	r.SetFontSize(minLabelFontSize)
	return minLabelFontSize
}
