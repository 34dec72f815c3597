package meshviewer

import (
	"bytes"
	"fmt"
	"html"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is the encoding of a rendered artifact.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJPEG Format = "jpeg"
)

// jpegQuality is used when transcoding rendered PNGs.
const jpegQuality = 90

// ParseFormat accepts png, svg, jpeg and jpg, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return "", WrapError(CodeInvalidConfig, "parse format", fmt.Errorf("unsupported format %q", s))
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatJPEG:
		return "jpg"
	}
	return "png"
}

// text returns s as the renderer must receive it. The SVG canvas writes
// text verbatim, so markup characters are escaped for it.
func (f Format) text(s string) string {
	if f == FormatSVG {
		return html.EscapeString(s)
	}
	return s
}

// provider returns the go-chart renderer used to draw this format.
// JPEG is drawn as PNG and transcoded afterwards.
func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// finish converts the renderer output into the final encoding.
func (f Format) finish(data []byte) ([]byte, error) {
	if f != FormatJPEG {
		return data, nil
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return encodeJPEG(img)
}

// encodeJPEG encodes an image as baseline JPEG.
func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, ensureRGBA(img), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ensureRGBA converts any image to RGBA.
func ensureRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}
