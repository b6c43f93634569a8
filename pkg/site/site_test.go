package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nxdk-pgraph/golden-pages/pkg/descriptor"
	"github.com/nxdk-pgraph/golden-pages/pkg/results"
)

func testResults() map[string]*results.SuiteResults {
	return map[string]*results.SuiteResults{
		"SuiteA": {
			Name: "SuiteA",
			TestResults: []results.TestResult{
				{
					Name:               "test1",
					ArtifactURL:        "https://example.com/golden/results/SuiteA/test1.png",
					NoAlphaArtifactURL: "https://example.com/noalpha/results-noalpha/SuiteA/test1.png",
				},
			},
		},
		"SuiteB": {
			Name: "SuiteB",
			TestResults: []results.TestResult{
				{
					Name:               "test2",
					ArtifactURL:        "https://example.com/golden/results/SuiteB/test2.png",
					NoAlphaArtifactURL: "https://example.com/noalpha/results-noalpha/SuiteB/test2.png",
				},
			},
		},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestWrite_ProducesFullSite(t *testing.T) {
	dir := t.TempDir()

	w := NewWriter(testResults(), dir, "https://example.com/src")
	if err := w.Write(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range []string{"site.css", "script.js", "index.html"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("expected %s to exist: %v", f, err)
		}
	}

	index := readFile(t, filepath.Join(dir, "index.html"))
	for _, link := range []string{"results/SuiteA/index.html", "results/SuiteB/index.html"} {
		if !strings.Contains(index, link) {
			t.Errorf("expected index to link to %s", link)
		}
	}

	pageA := readFile(t, filepath.Join(dir, "results", "SuiteA", "index.html"))
	if !strings.Contains(pageA, "https://example.com/golden/results/SuiteA/test1.png") {
		t.Error("expected suite page to contain the artifact URL")
	}
	if !strings.Contains(pageA, "https://example.com/noalpha/results-noalpha/SuiteA/test1.png") {
		t.Error("expected suite page to contain the no-alpha artifact URL")
	}
	// Suite pages live two levels down from the shared assets.
	if !strings.Contains(pageA, `href="../../site.css"`) {
		t.Error("expected suite page to reference ../../site.css")
	}
	if !strings.Contains(pageA, `href="../../index.html"`) {
		t.Error("expected suite page to link back to the top-level index")
	}
}

func TestWrite_NestedSuiteRelativePaths(t *testing.T) {
	dir := t.TempDir()
	res := map[string]*results.SuiteResults{
		"Group/Nested": {
			Name: "Group/Nested",
			TestResults: []results.TestResult{
				{Name: "t", ArtifactURL: "https://example.com/t.png", NoAlphaArtifactURL: "https://example.com/t-na.png"},
			},
		},
	}

	if err := NewWriter(res, dir, "").Write(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := readFile(t, filepath.Join(dir, "results", "Group", "Nested", "index.html"))
	if !strings.Contains(page, `href="../../../site.css"`) {
		t.Error("expected nested suite page to reference ../../../site.css")
	}
	if !strings.Contains(page, `href="../../../index.html"`) {
		t.Error("expected nested suite page to link ../../../index.html")
	}
}

func TestWrite_DescriptorEnrichment(t *testing.T) {
	dir := t.TempDir()
	res := testResults()
	res["SuiteA"].Descriptor = &descriptor.SuiteDescriptor{
		SuiteName:      "SuiteA",
		Description:    []string{"Exercises blending.", "One surface per mode."},
		SourceFile:     "foo/bar.cc",
		SourceFileLine: 42,
		TestDescriptions: map[string]string{
			"test1": "Renders the base case.",
		},
	}

	if err := NewWriter(res, dir, "https://example.com/src").Write(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pageA := readFile(t, filepath.Join(dir, "results", "SuiteA", "index.html"))
	if !strings.Contains(pageA, "Exercises blending.") {
		t.Error("expected suite description on the page")
	}
	if !strings.Contains(pageA, "https://example.com/src/foo/bar.cc#L42") {
		t.Error("expected source link with line fragment")
	}
	if !strings.Contains(pageA, "Renders the base case.") {
		t.Error("expected per-test description on the page")
	}

	// SuiteB has no descriptor and must still render.
	pageB := readFile(t, filepath.Join(dir, "results", "SuiteB", "index.html"))
	if !strings.Contains(pageB, "test2") {
		t.Error("expected undescribed suite page to list its artifact")
	}
}

func TestSourceURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		file    string
		line    int
		want    string
	}{
		{"with line", "https://example.com/src", "foo/bar.cc", 42, "https://example.com/src/foo/bar.cc#L42"},
		{"line zero", "https://example.com/src", "foo/bar.cc", 0, "https://example.com/src/foo/bar.cc#L0"},
		{"unknown line", "https://example.com/src", "foo/bar.cc", -1, "https://example.com/src/foo/bar.cc"},
		{"no base URL", "", "foo/bar.cc", 42, ""},
		{"no source file", "https://example.com/src", "", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(nil, t.TempDir(), tt.baseURL)
			if got := w.sourceURL(tt.file, tt.line); got != tt.want {
				t.Errorf("sourceURL(%q, %d) = %q, want %q", tt.file, tt.line, got, tt.want)
			}
		})
	}
}

func TestWrite_OverwritesExistingPages(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewWriter(testResults(), dir, "").Write(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index := readFile(t, filepath.Join(dir, "index.html"))
	if index == "stale" {
		t.Error("expected index.html to be overwritten")
	}
}
