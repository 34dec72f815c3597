package meshviewer

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/nimsforest/meshviewer"

// Viewer renders the snapshots of a provider to every target.
type Viewer struct {
	mu             sync.RWMutex
	provider       SnapshotProvider
	targets        []Target
	logger         *log.Logger
	gridStyle      GridStyle
	chartStyle     ChartStyle
	format         Format
	comparisonName string
	tracer         trace.Tracer
}

// Option configures the Viewer.
type Option func(*Viewer)

// WithLogger sets where progress and diagnostic lines go.
func WithLogger(l *log.Logger) Option {
	return func(v *Viewer) {
		v.logger = l
	}
}

// WithGridStyle sets the style of per-snapshot images.
func WithGridStyle(s GridStyle) Option {
	return func(v *Viewer) {
		v.gridStyle = s
	}
}

// WithChartStyle sets the style of the energy comparison chart.
func WithChartStyle(s ChartStyle) Option {
	return func(v *Viewer) {
		v.chartStyle = s
	}
}

// WithFormat sets the image encoding of every artifact.
func WithFormat(f Format) Option {
	return func(v *Viewer) {
		v.format = f
	}
}

// WithComparisonName sets the base name of the comparison artifact.
func WithComparisonName(name string) Option {
	return func(v *Viewer) {
		v.comparisonName = name
	}
}

// New creates a new Viewer with the given options.
func New(opts ...Option) *Viewer {
	v := &Viewer{
		logger:         log.New(os.Stdout, "", 0),
		gridStyle:      DefaultGridStyle(),
		chartStyle:     DefaultChartStyle(),
		format:         FormatPNG,
		comparisonName: DefaultComparisonName,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = log.New(io.Discard, "", 0)
	}
	v.tracer = otel.Tracer(tracerName)
	return v
}

// SetSnapshotProvider sets the source of snapshots.
func (v *Viewer) SetSnapshotProvider(p SnapshotProvider) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.provider = p
}

// AddTarget adds an output target.
func (v *Viewer) AddTarget(t Target) error {
	if t == nil {
		return NewError(CodeInvalidConfig, "nil target")
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.targets = append(v.targets, t)
	return nil
}

// RemoveTarget removes a target by reference.
func (v *Viewer) RemoveTarget(t Target) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, target := range v.targets {
		if target == t {
			v.targets = append(v.targets[:i], v.targets[i+1:]...)
			return
		}
	}
}

// Run decodes the provider's snapshots, renders one image per snapshot in
// order and, with at least two snapshots, the energy comparison chart.
// The first error stops the run; artifacts already written stay in place.
func (v *Viewer) Run(ctx context.Context) error {
	v.mu.RLock()
	provider := v.provider
	targets := make([]Target, len(v.targets))
	copy(targets, v.targets)
	v.mu.RUnlock()

	if provider == nil {
		return NewError(CodeInvalidConfig, "no snapshot provider set")
	}

	ctx, span := v.tracer.Start(ctx, "meshviewer.Run")
	defer span.End()

	snapshots, err := v.loadSnapshots(ctx, provider)
	if err != nil {
		return recordError(span, err)
	}
	span.SetAttributes(attribute.Int("meshviewer.snapshots", len(snapshots)))

	for i := range snapshots {
		if err := v.renderSnapshot(ctx, &snapshots[i], targets); err != nil {
			return recordError(span, err)
		}
	}

	if err := v.renderComparison(ctx, snapshots, targets); err != nil {
		return recordError(span, err)
	}
	return nil
}

func (v *Viewer) loadSnapshots(ctx context.Context, provider SnapshotProvider) ([]Snapshot, error) {
	_, span := v.tracer.Start(ctx, "meshviewer.Decode")
	defer span.End()

	snapshots, err := provider.GetSnapshots()
	if err != nil {
		return nil, recordError(span, fmt.Errorf("get snapshots: %w", err))
	}
	return snapshots, nil
}

func (v *Viewer) renderSnapshot(ctx context.Context, s *Snapshot, targets []Target) error {
	ctx, span := v.tracer.Start(ctx, "meshviewer.RenderGrid", trace.WithAttributes(
		attribute.String("meshviewer.title", s.Title),
		attribute.Int("meshviewer.width", s.Width),
		attribute.Int("meshviewer.height", s.Height),
	))
	defer span.End()

	v.logger.Printf("Generating plot for: %s (Energy: %v)", s.Title, s.TotalEnergy)

	view := BuildGridView(s, v.gridStyle.Palette)
	if view.Summary.Duplicates > 0 {
		v.logger.Printf("Warning: %s has %d duplicate core coordinate(s); the last entry wins", s.Title, view.Summary.Duplicates)
	}
	if view.Summary.OutOfBounds > 0 {
		v.logger.Printf("Warning: %s has %d core(s) outside its %dx%d grid", s.Title, view.Summary.OutOfBounds, s.Width, s.Height)
	}

	data, err := RenderGrid(view, v.gridStyle, v.format)
	if err != nil {
		return recordError(span, fmt.Errorf("render %q: %w", s.Title, err))
	}

	artifact := &Artifact{
		Name:   ArtifactName(s.Title, v.format),
		Kind:   ArtifactGrid,
		Format: v.format,
		Data:   data,
	}
	if err := v.write(ctx, artifact, targets); err != nil {
		return recordError(span, err)
	}
	v.logger.Printf("%s: %d occupied, %d faulty, %d busy, %d spare, %d unknown",
		s.Title, view.Summary.Occupied, view.Summary.Faulty, view.Summary.Busy, view.Summary.Spare, view.Summary.Unknown)
	return nil
}

func (v *Viewer) renderComparison(ctx context.Context, snapshots []Snapshot, targets []Target) error {
	comparison, ok := BuildComparison(snapshots, v.chartStyle.Palette)
	if !ok {
		return nil
	}

	ctx, span := v.tracer.Start(ctx, "meshviewer.RenderComparison",
		trace.WithAttributes(attribute.Int("meshviewer.bars", len(comparison.Bars))))
	defer span.End()

	data, err := RenderComparison(comparison, v.chartStyle, v.format)
	if err != nil {
		return recordError(span, fmt.Errorf("render comparison: %w", err))
	}

	artifact := &Artifact{
		Name:   v.comparisonName + "." + v.format.Extension(),
		Kind:   ArtifactComparison,
		Format: v.format,
		Data:   data,
	}
	return recordError(span, v.write(ctx, artifact, targets))
}

func (v *Viewer) write(ctx context.Context, artifact *Artifact, targets []Target) error {
	digest := xxh3.Hash(artifact.Data)
	for _, target := range targets {
		if err := target.Write(ctx, artifact); err != nil {
			return fmt.Errorf("target %s: %w", target.Name(), err)
		}
	}
	v.logger.Printf("Saved %s (%s, xxh3 %016x)", artifact.Name, humanize.Bytes(uint64(len(artifact.Data))), digest)
	return nil
}

// recordError marks span as failed when err is non-nil and returns err.
func recordError(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Close closes all targets.
func (v *Viewer) Close() error {
	v.mu.Lock()
	targets := v.targets
	v.targets = nil
	v.mu.Unlock()

	var lastErr error
	for _, target := range targets {
		if err := target.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
