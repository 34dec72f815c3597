package meshviewer

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SnapshotJSON is the JSON representation of a Snapshot as written by the simulator.
type SnapshotJSON struct {
	Title       string     `json:"title"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	TotalEnergy float64    `json:"total_energy"`
	Cores       []CoreJSON `json:"cores"`
}

// CoreJSON is the JSON representation of a Core.
type CoreJSON struct {
	ID     *int   `json:"id,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Status string `json:"status"`
	TaskID *int   `json:"task_id"`
}

// DecodeSnapshots decodes a JSON list of snapshots, preserving input order.
// Anything other than a list (or null) is a decode failure; no repair is attempted.
func DecodeSnapshots(data []byte) ([]Snapshot, error) {
	var raw []SnapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, WrapError(CodeDecodeFailure, "decode snapshots", err)
	}

	snapshots := make([]Snapshot, len(raw))
	for i, s := range raw {
		snapshots[i] = snapshotFromJSON(s)
	}
	return snapshots, nil
}

func snapshotFromJSON(s SnapshotJSON) Snapshot {
	cores := make([]Core, len(s.Cores))
	for i, c := range s.Cores {
		cores[i] = Core{
			ID:     c.ID,
			X:      c.X,
			Y:      c.Y,
			Status: Status(c.Status),
			TaskID: c.TaskID,
		}
	}
	return Snapshot{
		Title:       s.Title,
		Width:       s.Width,
		Height:      s.Height,
		TotalEnergy: s.TotalEnergy,
		Cores:       cores,
	}
}

// SnapshotsToJSON converts snapshots to their JSON representation.
func SnapshotsToJSON(snapshots []Snapshot) []SnapshotJSON {
	result := make([]SnapshotJSON, len(snapshots))
	for i, s := range snapshots {
		cores := make([]CoreJSON, len(s.Cores))
		for j, c := range s.Cores {
			cores[j] = CoreJSON{
				ID:     c.ID,
				X:      c.X,
				Y:      c.Y,
				Status: string(c.Status),
				TaskID: c.TaskID,
			}
		}
		result[i] = SnapshotJSON{
			Title:       s.Title,
			Width:       s.Width,
			Height:      s.Height,
			TotalEnergy: s.TotalEnergy,
			Cores:       cores,
		}
	}
	return result
}

// SnapshotsToJSONBytes encodes snapshots in the simulator's file layout.
func SnapshotsToJSONBytes(snapshots []Snapshot) ([]byte, error) {
	return json.MarshalIndent(SnapshotsToJSON(snapshots), "", "  ")
}
