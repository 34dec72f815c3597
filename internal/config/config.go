// Package config resolves meshviewer settings from defaults, a YAML file,
// the environment and command-line flags, in increasing precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/nimsforest/meshviewer"
)

// Config represents the complete viewer configuration.
type Config struct {
	Input          string          `yaml:"input" env:"INPUT"`
	OutputDir      string          `yaml:"output_dir" env:"OUTPUT_DIR"`
	Format         string          `yaml:"format" env:"FORMAT"`
	ComparisonName string          `yaml:"comparison_name" env:"COMPARISON_NAME"`
	Verbose        bool            `yaml:"verbose" env:"VERBOSE"`
	Grid           GridConfig      `yaml:"grid" envPrefix:"GRID_"`
	Chart          ChartConfig     `yaml:"chart" envPrefix:"CHART_"`
	Telemetry      TelemetryConfig `yaml:"telemetry" envPrefix:"OTEL_"`
}

// GridConfig contains per-snapshot image settings.
type GridConfig struct {
	Width         int        `yaml:"width" env:"WIDTH"`
	Height        int        `yaml:"height" env:"HEIGHT"`
	Margin        int        `yaml:"margin" env:"MARGIN"`
	EdgeColor     string     `yaml:"edge_color" env:"EDGE_COLOR"`
	LabelFontSize float64    `yaml:"label_font_size" env:"LABEL_FONT_SIZE"`
	TitleFontSize float64    `yaml:"title_font_size" env:"TITLE_FONT_SIZE"`
	Colors        CellColors `yaml:"colors" envPrefix:"COLOR_"`
}

// CellColors contains the fill color of each cell category.
type CellColors struct {
	Unknown  string `yaml:"unknown" env:"UNKNOWN"`
	Fault    string `yaml:"fault" env:"FAULT"`
	Occupied string `yaml:"occupied" env:"OCCUPIED"`
	Busy     string `yaml:"busy" env:"BUSY"`
	Spare    string `yaml:"spare" env:"SPARE"`
}

// ChartConfig contains energy comparison chart settings.
type ChartConfig struct {
	Width   int      `yaml:"width" env:"WIDTH"`
	Height  int      `yaml:"height" env:"HEIGHT"`
	Title   string   `yaml:"title" env:"TITLE"`
	YLabel  string   `yaml:"y_label" env:"Y_LABEL"`
	Palette []string `yaml:"palette" env:"PALETTE" envSeparator:","`
}

// TelemetryConfig contains optional tracing settings.
type TelemetryConfig struct {
	Endpoint string `yaml:"endpoint" env:"ENDPOINT"`
	Service  string `yaml:"service" env:"SERVICE"`
}

// EnvPrefix prefixes every environment variable read by Resolve.
const EnvPrefix = "MESHVIEWER_"

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Input:          "noxim_state.json",
		OutputDir:      ".",
		Format:         string(meshviewer.FormatPNG),
		ComparisonName: meshviewer.DefaultComparisonName,
		Grid: GridConfig{
			Width:         800,
			Height:        800,
			Margin:        40,
			EdgeColor:     "gray",
			LabelFontSize: 12,
			TitleFontSize: 14,
			Colors: CellColors{
				Unknown:  "white",
				Fault:    "red",
				Occupied: "lightgreen",
				Busy:     "orange",
				Spare:    "lightgray",
			},
		},
		Chart: ChartConfig{
			Width:   1000,
			Height:  600,
			Title:   "Energy Comparison",
			YLabel:  "Total Communication Energy",
			Palette: []string{"green", "orange", "red"},
		},
		Telemetry: TelemetryConfig{
			Service: "meshviewer",
		},
	}
}

// Load applies the YAML file at filename on top of cfg.
func Load(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// ParseEnv applies MESHVIEWER_* environment variables on top of cfg.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// flagValues holds the raw command-line values before precedence is applied.
type flagValues struct {
	config  string
	input   string
	out     string
	format  string
	verbose bool
}

func bindFlags(fs *flag.FlagSet, defaults Config) *flagValues {
	fv := &flagValues{}
	fs.StringVar(&fv.config, "config", "", "path to a YAML configuration file")
	fs.StringVar(&fv.input, "input", defaults.Input, "snapshot JSON written by the simulator")
	fs.StringVar(&fv.out, "out", defaults.OutputDir, "directory to write images into")
	fs.StringVar(&fv.format, "format", defaults.Format, "image format: png, svg or jpeg")
	fs.BoolVar(&fv.verbose, "v", defaults.Verbose, "print the effective configuration before rendering")
	return fv
}

// Resolve parses args with fs and returns the effective configuration:
// defaults, then the -config file, then the environment, then flags set explicitly.
func Resolve(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	fv := bindFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fv.config != "" {
		if err := Load(fv.config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = fv.input
		case "out":
			cfg.OutputDir = fv.out
		case "format":
			cfg.Format = fv.format
		case "v":
			cfg.Verbose = fv.verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by the viewer itself.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return meshviewer.NewError(meshviewer.CodeInvalidConfig, "input path is empty")
	}
	if strings.TrimSpace(c.ComparisonName) == "" {
		return meshviewer.NewError(meshviewer.CodeInvalidConfig, "comparison name is empty")
	}
	if len(c.Chart.Palette) == 0 {
		return meshviewer.NewError(meshviewer.CodeInvalidConfig, "chart palette is empty")
	}
	_, err := c.Options()
	return err
}

// Options converts the configuration into viewer options.
func (c Config) Options() ([]meshviewer.Option, error) {
	format, err := meshviewer.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	grid, err := c.Grid.style()
	if err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	chart, err := c.Chart.style()
	if err != nil {
		return nil, err
	}
	if err := chart.Validate(); err != nil {
		return nil, err
	}

	return []meshviewer.Option{
		meshviewer.WithFormat(format),
		meshviewer.WithGridStyle(grid),
		meshviewer.WithChartStyle(chart),
		meshviewer.WithComparisonName(c.ComparisonName),
	}, nil
}

func (g GridConfig) style() (meshviewer.GridStyle, error) {
	style := meshviewer.DefaultGridStyle()
	style.Width = g.Width
	style.Height = g.Height
	style.Margin = g.Margin
	style.LabelFontSize = g.LabelFontSize
	style.TitleFontSize = g.TitleFontSize

	edge, err := meshviewer.ParseColor(g.EdgeColor)
	if err != nil {
		return style, invalid("grid.edge_color", err)
	}
	style.EdgeColor = edge

	colors, err := meshviewer.ParseColors([]string{
		g.Colors.Unknown, g.Colors.Fault, g.Colors.Occupied, g.Colors.Busy, g.Colors.Spare,
	})
	if err != nil {
		return style, invalid("grid.colors", err)
	}
	style.Palette = meshviewer.Palette{
		Unknown:  colors[0],
		Fault:    colors[1],
		Occupied: colors[2],
		Busy:     colors[3],
		Spare:    colors[4],
	}
	return style, nil
}

func (ch ChartConfig) style() (meshviewer.ChartStyle, error) {
	style := meshviewer.DefaultChartStyle()
	style.Width = ch.Width
	style.Height = ch.Height
	style.Title = ch.Title
	style.YLabel = ch.YLabel

	palette, err := meshviewer.ParseColors(ch.Palette)
	if err != nil {
		return style, invalid("chart.palette", err)
	}
	style.Palette = palette
	return style, nil
}

func invalid(field string, err error) error {
	return meshviewer.WrapError(meshviewer.CodeInvalidConfig, "invalid "+field, err)
}

// Print writes the effective configuration to w.
func (c Config) Print(w io.Writer) {
	fmt.Fprintf(w, "Input: %s\n", c.Input)
	fmt.Fprintf(w, "Output: %s (%s)\n", c.OutputDir, c.Format)
	fmt.Fprintf(w, "Grid image: %dx%d\n", c.Grid.Width, c.Grid.Height)
	fmt.Fprintf(w, "Chart image: %dx%d palette=%s\n", c.Chart.Width, c.Chart.Height, strings.Join(c.Chart.Palette, ","))
	if c.Telemetry.Endpoint != "" {
		fmt.Fprintf(w, "Tracing: %s (service %s)\n", c.Telemetry.Endpoint, c.Telemetry.Service)
	}
}
