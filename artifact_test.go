package meshviewer

import "testing"

func TestSanitizeTitle(t *testing.T) {
	tests := map[string]string{
		"Initial Mapping":            "Initial_Mapping",
		"After Fault 1 - Core (0,0)": "After_Fault_1_-_Core_(0,0)",
		"Run: 2":                     "Run_2",
		"a/b\\c":                     "a_b_c",
		"":                           "",
	}
	for in, want := range tests {
		if got := SanitizeTitle(in); got != want {
			t.Fatalf("SanitizeTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestArtifactName(t *testing.T) {
	if got := ArtifactName("Initial Mapping", FormatPNG); got != "Initial_Mapping.png" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := ArtifactName("x", FormatJPEG); got != "x.jpg" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := ArtifactName("x", FormatSVG); got != "x.svg" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":     FormatPNG,
		"PNG":  FormatPNG,
		"svg":  FormatSVG,
		"jpg":  FormatJPEG,
		"jpeg": FormatJPEG,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("gif"); CodeOf(err) != CodeInvalidConfig {
		t.Fatalf("expected invalid config for gif, got %v", err)
	}
}
