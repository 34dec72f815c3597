package meshviewer

import "strings"

// DefaultComparisonName is the base name of the energy comparison artifact.
const DefaultComparisonName = "Energy_Comparison"

// ArtifactKind distinguishes per-snapshot images from the comparison chart.
type ArtifactKind string

const (
	ArtifactGrid       ArtifactKind = "grid"
	ArtifactComparison ArtifactKind = "comparison"
)

// Artifact is one encoded image ready to be written by a Target.
type Artifact struct {
	Name   string // file name including extension
	Kind   ArtifactKind
	Format Format
	Data   []byte
}

var titleReplacer = strings.NewReplacer(
	" ", "_",
	":", "",
	"/", "_",
	"\\", "_",
)

// SanitizeTitle turns a snapshot title into a file base name: spaces become
// underscores, colons are dropped and path separators become underscores.
func SanitizeTitle(title string) string {
	return titleReplacer.Replace(title)
}

// ArtifactName returns the file name of the image rendered for title.
func ArtifactName(title string, format Format) string {
	return SanitizeTitle(title) + "." + format.Extension()
}
