package results

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nxdk-pgraph/golden-pages/pkg/descriptor"
	"github.com/nxdk-pgraph/golden-pages/pkg/logger"
)

// artifactPattern matches every image artifact under the results root.
const artifactPattern = "**/*.png"

// Scanner scans and categorizes test results for the HTML site.
type Scanner struct {
	// ResultsDir is the root of the results tree.
	ResultsDir string

	// BaseURL is the public URL under which ResultsDir contents are served.
	BaseURL string

	// NoAlphaBaseURL is the public URL of the alpha-ignored renders.
	NoAlphaBaseURL string

	// Registry provides descriptor enrichment. May be empty.
	Registry descriptor.Registry
}

// Scan produces a mapping from suite name to SuiteResults. The suite name is
// the artifact's containing directory path relative to the results root,
// which tolerates arbitrarily nested suite directories.
func (s *Scanner) Scan() (map[string]*SuiteResults, error) {
	grouped, err := findArtifacts(s.ResultsDir, groupByDir)
	if err != nil {
		return nil, err
	}

	suites := make(map[string]*SuiteResults, len(grouped))
	for suiteName, images := range grouped {
		suites[suiteName] = s.processSuite(suiteName, images)
	}

	logger.Debug("Scanned %d suites under %s", len(suites), s.ResultsDir)
	return suites, nil
}

func (s *Scanner) processSuite(suiteName string, images []string) *SuiteResults {
	suiteBaseURL := fmt.Sprintf("%s/%s/%s", s.BaseURL, ResultsSubdir, suiteName)
	suiteNoAlphaBaseURL := fmt.Sprintf("%s/%s/%s", s.NoAlphaBaseURL, ResultsNoAlphaSubdir, suiteName)

	testResults := make([]TestResult, 0, len(images))
	for _, image := range images {
		testResults = append(testResults, TestResult{
			Name:               strings.TrimSuffix(image, path.Ext(image)),
			ArtifactURL:        suiteBaseURL + "/" + image,
			NoAlphaArtifactURL: suiteNoAlphaBaseURL + "/" + image,
		})
	}

	return &SuiteResults{
		Name:        suiteName,
		TestResults: testResults,
		Descriptor:  s.Registry.Lookup(suiteName),
	}
}

// FindArtifacts discovers image artifacts grouped by the first path segment
// under the results root. This is the wiki grouping: one page per top-level
// suite directory, with any deeper path kept as part of the artifact name.
func FindArtifacts(resultsDir string) (map[string][]string, error) {
	return findArtifacts(resultsDir, groupByFirstSegment)
}

type groupFunc func(image string) (suite, artifact string, ok bool)

// groupByDir groups an artifact under its full containing directory path.
func groupByDir(image string) (string, string, bool) {
	return path.Dir(image), path.Base(image), true
}

// groupByFirstSegment groups an artifact under its first path segment.
// Artifacts directly under the results root have no suite and are skipped.
func groupByFirstSegment(image string) (string, string, bool) {
	suite, artifact, found := strings.Cut(image, "/")
	if !found {
		return "", "", false
	}
	return suite, artifact, true
}

func findArtifacts(resultsDir string, group groupFunc) (map[string][]string, error) {
	matches, err := doublestar.Glob(os.DirFS(resultsDir), artifactPattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", resultsDir, err)
	}
	sort.Strings(matches)

	grouped := make(map[string][]string)
	for _, image := range matches {
		suite, artifact, ok := group(image)
		if !ok {
			logger.Warn("Skipping artifact with no suite directory: %s", image)
			continue
		}
		grouped[suite] = append(grouped[suite], artifact)
	}

	return grouped, nil
}
