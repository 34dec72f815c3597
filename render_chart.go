package meshviewer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	annotationGap      = 4 // pixels between a bar top and its value
	chartTitleTop      = 20
	chartTitleFontSize = 14
)

// ChartStyle configures the energy comparison chart.
type ChartStyle struct {
	Width              int
	Height             int
	Title              string
	YLabel             string
	Palette            []drawing.Color
	BarWidth           int
	BarSpacing         int
	AnnotationFontSize float64
	Headroom           float64 // share of the tallest bar left free above it
}

// DefaultChartStyle returns a 1000x600 chart cycling green, orange and red.
func DefaultChartStyle() ChartStyle {
	return ChartStyle{
		Width:              1000,
		Height:             600,
		Title:              "Energy Comparison",
		YLabel:             "Total Communication Energy",
		Palette:            DefaultBarPalette(),
		BarWidth:           120,
		BarSpacing:         80,
		AnnotationFontSize: 10,
		Headroom:           0.1,
	}
}

// Validate reports whether the style can produce a chart.
func (s ChartStyle) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return NewError(CodeInvalidConfig, fmt.Sprintf("chart size %dx%d must be positive", s.Width, s.Height))
	}
	if s.BarWidth <= 0 || s.BarSpacing < 0 {
		return NewError(CodeInvalidConfig, "chart bar width must be positive and spacing non-negative")
	}
	if s.Headroom < 0 {
		return NewError(CodeInvalidConfig, "chart headroom is negative")
	}
	if s.AnnotationFontSize <= 0 {
		return NewError(CodeInvalidConfig, "chart annotation font size must be positive")
	}
	return nil
}

// RenderComparison draws the energy comparison bar chart and encodes it in format.
func RenderComparison(c *Comparison, style ChartStyle, format Format) ([]byte, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	regular, _, err := loadFonts()
	if err != nil {
		return nil, WrapError(CodeRenderFailure, "load fonts", err)
	}

	yMax := c.MaxValue() * (1 + style.Headroom)
	if yMax <= 0 {
		yMax = 1
	}

	bars := make([]chart.Value, len(c.Bars))
	for i, b := range c.Bars {
		bars[i] = chart.Value{
			Label: format.text(b.Label),
			Value: b.Value,
			Style: chart.Style{FillColor: b.Color, StrokeColor: b.Color, StrokeWidth: 1},
		}
	}

	bc := chart.BarChart{
		Width:      style.Width,
		Height:     style.Height,
		Font:       regular,
		BarWidth:   style.BarWidth,
		BarSpacing: style.BarSpacing,
		TitleStyle: chart.Style{Hidden: true},
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Name:  format.text(style.YLabel),
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Bars: bars,
	}
	bc.Elements = []chart.Renderable{
		drawChartTitle(style, format, regular),
		annotateBars(c, style, format, yMax, regular),
	}

	var buf bytes.Buffer
	if err := bc.Render(format.provider(), &buf); err != nil {
		return nil, WrapError(CodeRenderFailure, "render comparison", err)
	}
	data, err := format.finish(buf.Bytes())
	if err != nil {
		return nil, WrapError(CodeRenderFailure, "encode comparison", err)
	}
	return data, nil
}

// drawChartTitle writes the chart title centered above the canvas. Text
// rotation left over from the y-axis name is cleared first.
func drawChartTitle(style ChartStyle, format Format, font *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if style.Title == "" {
			return
		}
		r.ClearTextRotation()
		r.SetFont(font)
		r.SetFontSize(chartTitleFontSize)
		r.SetFontColor(NamedColors["black"])
		tb := r.MeasureText(style.Title)
		r.Text(format.text(style.Title), (style.Width-tb.Width())/2, chartTitleTop+tb.Height())
	}
}

// annotateBars writes each bar's annotation centered above it.
func annotateBars(c *Comparison, style ChartStyle, format Format, yMax float64, font *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		r.ClearTextRotation()
		centers := barCenters(len(c.Bars), canvasBox, style.BarWidth, style.BarSpacing)

		r.SetFont(font)
		r.SetFontSize(style.AnnotationFontSize)
		r.SetFontColor(NamedColors["black"])
		for i, b := range c.Bars {
			height := int(b.Value / yMax * float64(canvasBox.Height()))
			top := canvasBox.Bottom - height
			tb := r.MeasureText(b.Annotation)
			r.Text(format.text(b.Annotation), centers[i]-tb.Width()/2, top-annotationGap)
		}
	}
}

// barCenters returns the x center of each bar. Bars are laid out from the
// left edge of the canvas; width and spacing shrink when they do not fit.
func barCenters(n int, canvasBox chart.Box, barWidth, barSpacing int) []int {
	if n == 0 {
		return nil
	}
	canvasWidth := canvasBox.Width()

	spacing := barSpacing
	if n*(barWidth+spacing) > canvasWidth {
		spacing = 0
		if rest := canvasWidth - n*barWidth; rest > 0 {
			spacing = int(math.Ceil(float64(rest) / float64(n)))
		}
	}
	width := barWidth
	if n*(width+spacing) > canvasWidth {
		width = 0
		if rest := canvasWidth - n*spacing; rest > 0 {
			width = int(math.Ceil(float64(rest) / float64(n)))
		}
	}

	centers := make([]int, n)
	x := canvasBox.Left
	for i := range centers {
		left := x + spacing/2
		centers[i] = left + width/2
		x += width + spacing
	}
	return centers
}
