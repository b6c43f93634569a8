package descriptor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nxdk-pgraph/golden-pages/pkg/logger"
)

// fetchTimeout bounds the single registry fetch. There is no retry: the
// registry is best-effort enrichment, not required input.
const fetchTimeout = 30 * time.Second

// registryDoc mirrors the published registry JSON shape.
type registryDoc struct {
	TestSuites []registryEntry `json:"test_suites"`
}

// registryEntry is one suite entry as published. All fields are optional;
// missing values degrade to zero values (or -1 for the source line) rather
// than failing the load.
type registryEntry struct {
	Suite            string            `json:"suite"`
	Class            string            `json:"class"`
	Description      []string          `json:"description"`
	SourceFile       string            `json:"source_file"`
	SourceFileLine   *int              `json:"source_file_line"`
	TestDescriptions map[string]string `json:"test_descriptions"`
}

func (e registryEntry) descriptor() *SuiteDescriptor {
	line := -1
	if e.SourceFileLine != nil {
		line = *e.SourceFileLine
	}

	descriptions := e.TestDescriptions
	if descriptions == nil {
		descriptions = map[string]string{}
	}

	return &SuiteDescriptor{
		SuiteName:        strings.ReplaceAll(e.Suite, " ", "_"),
		ClassName:        e.Class,
		Description:      e.Description,
		SourceFile:       e.SourceFile,
		SourceFileLine:   line,
		TestDescriptions: descriptions,
	}
}

// Loader fetches suite descriptors from a registry URL.
type Loader struct {
	registryURL string
	client      *http.Client
}

// NewLoader creates a Loader for the given registry URL.
func NewLoader(registryURL string) *Loader {
	return &Loader{
		registryURL: registryURL,
		client:      &http.Client{Timeout: fetchTimeout},
	}
}

// Load fetches and parses the registry. Any transport, status, or parse
// failure is logged and yields an empty Registry.
func (l *Loader) Load(ctx context.Context) Registry {
	doc, ok := l.fetch(ctx)
	if !ok {
		return Registry{}
	}

	registry := make(Registry, len(doc.TestSuites))
	for _, entry := range doc.TestSuites {
		d := entry.descriptor()
		registry[d.SuiteName] = d
	}

	logger.Debug("Loaded %d suite descriptors from %s", len(registry), l.registryURL)
	return registry
}

func (l *Loader) fetch(ctx context.Context) (*registryDoc, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.registryURL, nil)
	if err != nil {
		logger.Error("Failed to build registry request for '%s': %v", l.registryURL, err)
		return nil, false
	}

	resp, err := l.client.Do(req)
	if err != nil {
		logger.Error("Failed to load descriptor registry from '%s': %v", l.registryURL, err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Descriptor registry fetch from '%s' returned status %d", l.registryURL, resp.StatusCode)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read descriptor registry from '%s': %v", l.registryURL, err)
		return nil, false
	}

	var doc registryDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		logger.Error("Failed to parse descriptor registry from '%s': %v", l.registryURL, err)
		return nil, false
	}

	return &doc, true
}
