// Package descriptor loads and matches test suite descriptors from the
// nxdk_pgraph_tests registry.
//
// The registry is a JSON document published alongside the test sources. It is
// strictly an enrichment source: every failure mode degrades to "no
// descriptors" so site generation never depends on it.
package descriptor

import (
	"strings"
	"unicode"
)

// SuiteDescriptor describes one of the nxdk_pgraph_tests test suites.
type SuiteDescriptor struct {
	// SuiteName is the normalized suite name (spaces replaced with
	// underscores) used as the registry key.
	SuiteName string

	// ClassName is the C++ class implementing the suite.
	ClassName string

	// Description holds the suite description, one line per entry.
	Description []string

	// SourceFile is the path of the suite source within the test repo.
	SourceFile string

	// SourceFileLine is the line at which the suite is defined, or -1 if
	// unknown.
	SourceFileLine int

	// TestDescriptions maps individual test names to their descriptions.
	TestDescriptions map[string]string
}

// Registry maps suite names to their descriptors.
type Registry map[string]*SuiteDescriptor

// Registry keys are generally of the form SomeSuiteTests whereas the on-disk
// suite names tend to be Some_suite. The two naming conventions drift
// independently, so lookup falls back through progressively looser forms.
const descriptorKeySuffix = "Tests"

// Lookup attempts a permissive lookup of the given suite name, returning nil
// if no descriptor matches.
func (r Registry) Lookup(suiteName string) *SuiteDescriptor {
	// Perfect match wins.
	if d, ok := r[suiteName]; ok {
		return d
	}

	camel := camelCase(suiteName)
	if d, ok := r[camel]; ok {
		return d
	}

	return r[camel+descriptorKeySuffix]
}

// camelCase converts an underscore_separated name to CamelCase.
func camelCase(name string) string {
	var b strings.Builder
	for _, element := range strings.Split(name, "_") {
		b.WriteString(titleWord(element))
	}
	return b.String()
}

// titleWord title-cases word: a letter at the start or after a non-letter is
// uppercased, every other letter is lowercased. Digits pass through, so
// "3d" becomes "3D" and "a8r8g8b8" becomes "A8R8G8B8".
func titleWord(word string) string {
	runes := []rune(word)
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if prevLetter {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}
