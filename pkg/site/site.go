// Package site generates the static HTML results site for GitHub Pages.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/nxdk-pgraph/golden-pages/pkg/descriptor"
	"github.com/nxdk-pgraph/golden-pages/pkg/logger"
	"github.com/nxdk-pgraph/golden-pages/pkg/results"
)

// Writer generates HTML output suitable for GitHub Pages.
//
// The output tree is self-contained: one shared CSS and JS file at the root,
// a top-level index, and one page per suite under results/<suite>/index.html.
// Existing files are overwritten unconditionally; the site is regenerated
// from scratch on every run.
type Writer struct {
	results       map[string]*results.SuiteResults
	outputDir     string
	sourceBaseURL string
}

// NewWriter creates a Writer for the given scan results.
// sourceBaseURL is the base URL under which suite source files can be
// browsed; empty disables source links.
func NewWriter(res map[string]*results.SuiteResults, outputDir, sourceBaseURL string) *Writer {
	return &Writer{
		results:       res,
		outputDir:     strings.TrimRight(outputDir, "/"),
		sourceBaseURL: strings.TrimRight(sourceBaseURL, "/"),
	}
}

// Write renders the whole site. A failure writing any page aborts the run
// and leaves already-written pages in place.
func (w *Writer) Write() error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := w.writeCSS(); err != nil {
		return err
	}
	if err := w.writeJS(); err != nil {
		return err
	}
	if err := w.writeTopLevelIndex(); err != nil {
		return err
	}

	for _, name := range results.SortedNames(w.results) {
		if err := w.writeSuiteResultsPage(w.results[name]); err != nil {
			return err
		}
	}

	logger.WithField("suites", len(w.results)).Infof("Wrote site to %s", w.outputDir)
	return nil
}

// suiteResultURL is the location of a suite page relative to the site root.
func suiteResultURL(suiteName string) string {
	return fmt.Sprintf("%s/%s/index.html", results.ResultsSubdir, suiteName)
}

// sourceURL builds a browsable link to a suite's source file, with a line
// fragment when the line is known.
func (w *Writer) sourceURL(sourceFile string, sourceLine int) string {
	if w.sourceBaseURL == "" || sourceFile == "" {
		return ""
	}
	if sourceLine >= 0 {
		return fmt.Sprintf("%s/%s#L%d", w.sourceBaseURL, sourceFile, sourceLine)
	}
	return fmt.Sprintf("%s/%s", w.sourceBaseURL, sourceFile)
}

type suiteLink struct {
	Name string
	URL  string
}

type indexData struct {
	CSSDir string
	JSDir  string
	Suites []suiteLink
}

type resultData struct {
	Name        string
	URL         string
	NoAlphaURL  string
	Description string
}

type descriptorData struct {
	Description []string
	SourceFile  string
	SourceURL   string
}

type suitePageData struct {
	SuiteName  string
	CSSDir     string
	JSDir      string
	HomeURL    string
	Results    []resultData
	Descriptor *descriptorData
}

func (w *Writer) packDescriptor(d *descriptor.SuiteDescriptor) *descriptorData {
	if d == nil {
		return nil
	}
	return &descriptorData{
		Description: d.Description,
		SourceFile:  d.SourceFile,
		SourceURL:   w.sourceURL(d.SourceFile, d.SourceFileLine),
	}
}

func (w *Writer) writeTopLevelIndex() error {
	data := indexData{
		CSSDir: ".",
		JSDir:  ".",
	}
	for _, name := range results.SortedNames(w.results) {
		data.Suites = append(data.Suites, suiteLink{Name: name, URL: suiteResultURL(name)})
	}

	return renderToFile(indexTemplate, data, filepath.Join(w.outputDir, "index.html"))
}

func (w *Writer) writeSuiteResultsPage(suite *results.SuiteResults) error {
	outputDir := filepath.Join(w.outputDir, results.ResultsSubdir, filepath.FromSlash(suite.Name))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create suite directory %s: %w", outputDir, err)
	}

	// Pages can sit at varying depths under the root (suite names may
	// contain path separators), so the shared asset paths are recomputed
	// per page.
	rel, err := filepath.Rel(outputDir, w.outputDir)
	if err != nil {
		return fmt.Errorf("relative path for %s: %w", suite.Name, err)
	}
	rel = filepath.ToSlash(rel)

	data := suitePageData{
		SuiteName:  suite.Name,
		CSSDir:     rel,
		JSDir:      rel,
		HomeURL:    rel + "/index.html",
		Descriptor: w.packDescriptor(suite.Descriptor),
	}

	for _, r := range suite.TestResults {
		rd := resultData{
			Name:       r.Name,
			URL:        r.ArtifactURL,
			NoAlphaURL: r.NoAlphaArtifactURL,
		}
		if suite.Descriptor != nil {
			rd.Description = suite.Descriptor.TestDescriptions[r.Name]
		}
		data.Results = append(data.Results, rd)
	}

	return renderToFile(suitePageTemplate, data, filepath.Join(outputDir, "index.html"))
}

func (w *Writer) writeCSS() error {
	tmpl, err := texttemplate.New("site.css").Parse(cssTemplate)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cssParams{
		TitleBarHeight:              40,
		ComparisonGoldenOutlineSize: 6,
	}); err != nil {
		return fmt.Errorf("render site.css: %w", err)
	}

	return writeFile(filepath.Join(w.outputDir, "site.css"), buf.Bytes())
}

func (w *Writer) writeJS() error {
	return writeFile(filepath.Join(w.outputDir, "script.js"), []byte(scriptJS))
}

type cssParams struct {
	TitleBarHeight              int
	ComparisonGoldenOutlineSize int
}

func renderToFile(tmplText string, data interface{}, path string) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(tmplText)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	return writeFile(path, buf.Bytes())
}

func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
