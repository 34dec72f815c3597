package meshviewer

import (
	"errors"
	"testing"
)

const sampleState = `[
  {
    "title": "Initial Mapping",
    "width": 2,
    "height": 2,
    "total_energy": 300,
    "cores": [
      {"id": 0, "x": 0, "y": 0, "status": "BUSY", "task_id": 0},
      {"id": 1, "x": 1, "y": 0, "status": "HEALTHY", "task_id": null},
      {"id": 2, "x": 0, "y": 1, "status": "FAULTY", "task_id": null}
    ]
  },
  {
    "title": "After Fault 1 - Core (0,0)",
    "width": 2,
    "height": 2,
    "total_energy": 412.5,
    "cores": []
  }
]`

func TestDecodeSnapshots(t *testing.T) {
	snapshots, err := DecodeSnapshots([]byte(sampleState))
	if err != nil {
		t.Fatalf("DecodeSnapshots error: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snapshots))
	}

	first := snapshots[0]
	if first.Title != "Initial Mapping" || first.Width != 2 || first.Height != 2 || first.TotalEnergy != 300 {
		t.Fatalf("unexpected first snapshot %+v", first)
	}
	if len(first.Cores) != 3 {
		t.Fatalf("expected 3 cores, got %d", len(first.Cores))
	}
	if c := first.Cores[0]; c.TaskID == nil || *c.TaskID != 0 || c.Status != StatusBusy || c.ID == nil || *c.ID != 0 {
		t.Fatalf("unexpected core 0: %+v", c)
	}
	if first.Cores[1].TaskID != nil {
		t.Fatal("expected null task_id to decode as nil")
	}
	if snapshots[1].Title != "After Fault 1 - Core (0,0)" || snapshots[1].TotalEnergy != 412.5 {
		t.Fatalf("unexpected second snapshot %+v", snapshots[1])
	}
}

func TestDecodeSnapshotsEmptyList(t *testing.T) {
	snapshots, err := DecodeSnapshots([]byte(`[]`))
	if err != nil {
		t.Fatalf("DecodeSnapshots error: %v", err)
	}
	if len(snapshots) != 0 {
		t.Fatalf("expected no snapshots, got %d", len(snapshots))
	}
}

func TestDecodeSnapshotsRejectsMalformedInput(t *testing.T) {
	inputs := map[string]string{
		"single object":    `{"title": "x", "width": 1, "height": 1, "total_energy": 0, "cores": []}`,
		"truncated":        `[{"title": "x", "width": 1,`,
		"unclosed array":   `[{"title": "x"}`,
		"wrong field type": `[{"title": "x", "width": "wide"}]`,
		"empty":            ``,
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshots([]byte(in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrDecodeFailure) {
				t.Fatalf("expected decode failure, got %v", err)
			}
		})
	}
}

func TestSnapshotsToJSONBytesDecodesBack(t *testing.T) {
	in := []Snapshot{{
		Title:       "A",
		Width:       1,
		Height:      1,
		TotalEnergy: 1.5,
		Cores:       []Core{{ID: intPtr(0), X: 0, Y: 0, Status: StatusFaulty}},
	}}
	data, err := SnapshotsToJSONBytes(in)
	if err != nil {
		t.Fatalf("SnapshotsToJSONBytes error: %v", err)
	}
	out, err := DecodeSnapshots(data)
	if err != nil {
		t.Fatalf("DecodeSnapshots error: %v", err)
	}
	if len(out) != 1 || out[0].Cores[0].Status != StatusFaulty || out[0].Cores[0].TaskID != nil {
		t.Fatalf("unexpected decoded snapshots %+v", out)
	}
}
