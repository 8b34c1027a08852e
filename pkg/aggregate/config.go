package aggregate

// Config holds the fixed settings for a single aggregation run.
// The CLI always runs with DefaultConfig; the struct exists so the
// pipeline can be pointed at scratch locations in tests.
type Config struct {
	Output       string   // Destination path for the combined output document.
	ExcludedDirs []string // Directory names pruned from traversal, matched case-sensitively.
	SampleSize   int      // Number of leading bytes sampled for content classification.
}

// DefaultConfig returns the production settings: output.txt in the current
// working directory, version-control metadata excluded, 512-byte samples.
func DefaultConfig() Config {
	return Config{
		Output:       "output.txt",
		ExcludedDirs: []string{".git"},
		SampleSize:   512,
	}
}
