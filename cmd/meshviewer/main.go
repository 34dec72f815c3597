// Package main renders the snapshot file written by the mesh simulator into images.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nimsforest/meshviewer"
	"github.com/nimsforest/meshviewer/internal/config"
	"github.com/nimsforest/meshviewer/internal/telemetry"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	cfg, err := config.Resolve(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if cfg.Verbose {
		cfg.Print(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Service, cfg.Telemetry.Endpoint)
	if err != nil {
		log.Fatalf("Error: setup tracing: %v", err)
	}
	defer shutdown(context.Background())

	if err := run(ctx, cfg, log.Default()); err != nil {
		shutdown(context.Background())
		log.Fatalf("Error: %s", diagnose(cfg, err))
	}
}

// run renders every snapshot of cfg.Input into cfg.OutputDir.
func run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, meshviewer.WithLogger(logger))

	v := meshviewer.New(opts...)
	defer v.Close()

	v.SetSnapshotProvider(meshviewer.NewFileSnapshotProvider(cfg.Input))
	if err := v.AddTarget(meshviewer.NewFileTarget(cfg.OutputDir)); err != nil {
		return err
	}
	return v.Run(ctx)
}

// diagnose turns a run error into the line printed before exiting.
func diagnose(cfg config.Config, err error) string {
	switch meshviewer.CodeOf(err) {
	case meshviewer.CodeInputMissing:
		return fmt.Sprintf("%s not found. Run the simulator first.", cfg.Input)
	case meshviewer.CodeDecodeFailure:
		return fmt.Sprintf("could not decode %s: %v", cfg.Input, err)
	}
	return err.Error()
}
