// Package wiki generates GitHub wiki Markdown pages from golden results.
package wiki

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nxdk-pgraph/golden-pages/pkg/logger"
	"github.com/nxdk-pgraph/golden-pages/pkg/results"
)

// Writer generates a flat set of wiki pages: one Home page plus one
// Results-<suite> page per suite.
//
// The wiki does not support pages in subdirectories, so subdirectories are
// only used for image content. Suites all have unique names so the flat
// page namespace does not collide.
type Writer struct {
	resultsDir string
	outputDir  string
	rawBaseURL string
}

// NewWriter creates a Writer. rawBaseURL is the base URL at which the raw
// image content of resultsDir is publicly served.
func NewWriter(resultsDir, outputDir, rawBaseURL string) *Writer {
	return &Writer{
		resultsDir: resultsDir,
		outputDir:  outputDir,
		rawBaseURL: strings.TrimRight(rawBaseURL, "/"),
	}
}

// Write regenerates the wiki pages for the given artifacts (as produced by
// results.FindArtifacts). The output directory is treated as fully owned:
// every existing Markdown page is removed first so renamed or deleted suites
// do not leave stale pages behind.
func (w *Writer) Write(resultsBySuite map[string][]string) error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := w.cleanOutputDir(); err != nil {
		return err
	}

	suiteNames := results.SortedNames(resultsBySuite)

	if err := w.writeTopLevelPage(suiteNames); err != nil {
		return err
	}

	for _, suiteName := range suiteNames {
		if err := w.writeSuiteResultsPage(suiteName, resultsBySuite[suiteName]); err != nil {
			return err
		}
	}

	logger.WithField("suites", len(suiteNames)).Infof("Wrote Home page and suite pages to %s", w.outputDir)
	return nil
}

// cleanOutputDir removes every Markdown page from the output directory.
func (w *Writer) cleanOutputDir() error {
	pages, err := filepath.Glob(filepath.Join(w.outputDir, "*.md"))
	if err != nil {
		return fmt.Errorf("list stale pages: %w", err)
	}

	for _, page := range pages {
		logger.Debug("Removing stale page %s", page)
		if err := os.Remove(page); err != nil {
			return fmt.Errorf("remove stale page %s: %w", page, err)
		}
	}

	return nil
}

func (w *Writer) writeTopLevelPage(suiteNames []string) error {
	var b strings.Builder
	b.WriteString("Results\n")
	b.WriteString("---\n")
	for _, suiteName := range suiteNames {
		fmt.Fprintf(&b, "- [[%s|%s]]\n", suiteName, pageName(suiteName))
	}

	return writePage(filepath.Join(w.outputDir, "Home.md"), b.String())
}

func (w *Writer) writeSuiteResultsPage(suiteName string, artifacts []string) error {
	var b strings.Builder
	b.WriteString(suiteName + "\n")
	b.WriteString("---\n")

	sorted := append([]string(nil), artifacts...)
	sort.Strings(sorted)

	for _, artifact := range sorted {
		imagePath := path.Join(filepath.Base(w.resultsDir), suiteName, artifact)
		imageURL := w.rawBaseURL + "/" + escapePath(imagePath)
		fmt.Fprintf(&b, "## %s\n", artifact)
		fmt.Fprintf(&b, "![%s](%s)\n", artifact, imageURL)
	}

	return writePage(filepath.Join(w.outputDir, pageName(suiteName)+".md"), b.String())
}

// pageName is the wiki page name for a suite.
func pageName(suiteName string) string {
	return "Results-" + suiteName
}

// escapePath percent-escapes each segment of a slash-separated path while
// keeping the separators intact.
func escapePath(p string) string {
	u := url.URL{Path: p}
	return u.EscapedPath()
}

func writePage(pagePath, content string) error {
	if err := os.WriteFile(pagePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", pagePath, err)
	}
	return nil
}
