// Package results discovers golden test artifacts in a results directory and
// groups them by test suite.
package results

import (
	"sort"

	"github.com/nxdk-pgraph/golden-pages/pkg/descriptor"
)

// Fixed subdirectory names under the published base URLs.
const (
	ResultsSubdir        = "results"
	ResultsNoAlphaSubdir = "results-noalpha"
)

// TestResult contains information about the results of a specific test within
// a suite.
type TestResult struct {
	// Name is the artifact file name without its extension.
	Name string

	// ArtifactURL is the public URL of the artifact rendered with its alpha
	// channel honored.
	ArtifactURL string

	// NoAlphaArtifactURL is the public URL of the artifact rendered with the
	// alpha channel ignored.
	NoAlphaArtifactURL string
}

// SuiteResults contains information about the results of a specific suite
// within a run.
type SuiteResults struct {
	Name        string
	TestResults []TestResult

	// Descriptor is the matched registry descriptor, or nil if no fuzzy
	// match was found. An unmatched suite is still published, just without
	// description or source enrichment.
	Descriptor *descriptor.SuiteDescriptor
}

// SortedNames returns the suite names of the given results map in
// alphabetical order. Directory enumeration order is not reproducible, so
// emitters iterate via this helper.
func SortedNames[V any](results map[string]V) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
