package meshviewer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileTargetWritesAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	target := NewFileTarget(dir)

	if err := target.Write(context.Background(), &Artifact{Name: "a.png", Data: []byte("one")}); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := target.Write(context.Background(), &Artifact{Name: "a.png", Data: []byte("two")}); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.png"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.Equal(got, []byte("two")) {
		t.Fatalf("expected overwritten content, got %q", got)
	}
	if target.Path("a.png") != filepath.Join(dir, "a.png") {
		t.Fatalf("unexpected path %q", target.Path("a.png"))
	}
}

func TestFileTargetUnwritableDirectory(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	target := NewFileTarget(filepath.Join(blocker, "sub"))
	err := target.Write(context.Background(), &Artifact{Name: "a.png", Data: []byte("x")})
	if !errors.Is(err, ErrRenderIOFailure) {
		t.Fatalf("expected render io failure, got %v", err)
	}
}

func TestFileTargetDefaultsToWorkingDirectory(t *testing.T) {
	if NewFileTarget("").Name() != "FileTarget(.)" {
		t.Fatalf("unexpected name %q", NewFileTarget("").Name())
	}
}

func TestMemoryTarget(t *testing.T) {
	target := NewMemoryTarget()
	ctx := context.Background()

	for _, a := range []*Artifact{
		{Name: "a.png", Data: []byte("1")},
		{Name: "b.png", Data: []byte("2")},
		{Name: "a.png", Data: []byte("3")},
	} {
		if err := target.Write(ctx, a); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}

	artifacts := target.Artifacts()
	if len(artifacts) != 2 || artifacts[0].Name != "a.png" || artifacts[1].Name != "b.png" {
		t.Fatalf("unexpected artifacts %+v", artifacts)
	}
	if a, ok := target.Get("a.png"); !ok || string(a.Data) != "3" {
		t.Fatalf("expected replaced artifact, got %+v", a)
	}

	if err := target.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := target.Write(ctx, &Artifact{Name: "c.png"}); CodeOf(err) != CodeRenderIOFailure {
		t.Fatalf("expected write after close to fail, got %v", err)
	}
}
