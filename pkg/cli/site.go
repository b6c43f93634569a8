package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nxdk-pgraph/golden-pages/pkg/config"
	"github.com/nxdk-pgraph/golden-pages/pkg/descriptor"
	"github.com/nxdk-pgraph/golden-pages/pkg/logger"
	"github.com/nxdk-pgraph/golden-pages/pkg/results"
	"github.com/nxdk-pgraph/golden-pages/pkg/site"
)

var siteCommand = &cli.Command{
	Name:      "site",
	Usage:     "Generate the HTML results site for GitHub Pages",
	ArgsUsage: "<results-dir> <output-dir>",
	Description: `Scan a results directory for golden images and generate a
self-contained HTML site: a top-level index plus one page per test
suite, each listing every artifact with an alpha/no-alpha toggle.

Suite descriptions and source links come from the test suite
descriptor registry when it is reachable; generation succeeds
without it.

Examples:
  golden-pages site results/ site-output/
  golden-pages site results/ out/ --registry-url ""
  golden-pages site results/ out/ --config config.yaml`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to workspace config.yaml",
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Base URL at which the golden images may be publicly accessed",
			Value:   "https://raw.githubusercontent.com/abaire/nxdk_pgraph_tests_golden_results/main",
			EnvVars: []string{"GOLDEN_PAGES_BASE_URL"},
		},
		&cli.StringFlag{
			Name:    "no-alpha-base-url",
			Usage:   "Base URL at which the golden images with alpha ignored may be publicly accessed",
			Value:   "https://raw.githubusercontent.com/abaire/nxdk_pgraph_tests_golden_results/pages_deploy",
			EnvVars: []string{"GOLDEN_PAGES_NO_ALPHA_BASE_URL"},
		},
		&cli.StringFlag{
			Name:    "registry-url",
			Usage:   "URL of the JSON test suite descriptor registry (empty disables enrichment)",
			Value:   "https://raw.githubusercontent.com/abaire/nxdk_pgraph_tests/pages_doxygen/xml/nxdk_pgraph_tests_registry.json",
			EnvVars: []string{"GOLDEN_PAGES_REGISTRY_URL"},
		},
		&cli.StringFlag{
			Name:    "source-base-url",
			Usage:   "Base URL from which the test suite source files may be browsed",
			Value:   "https://github.com/abaire/nxdk_pgraph_tests/blob/pages_doxygen",
			EnvVars: []string{"GOLDEN_PAGES_SOURCE_BASE_URL"},
		},
	},
	Action: runSite,
}

func runSite(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected <results-dir> and <output-dir> arguments")
	}

	setupConsole(c.Bool("no-ansi"))
	logger.Init(c.Bool("verbose"))

	resultsDir := c.Args().Get(0)
	outputDir := c.Args().Get(1)

	cfg, err := loadWorkspaceConfig(c.String("config"))
	if err != nil {
		return err
	}

	baseURL := resolve(c.String("base-url"), c.IsSet("base-url"), cfg.BaseURL)
	noAlphaBaseURL := resolve(c.String("no-alpha-base-url"), c.IsSet("no-alpha-base-url"), cfg.NoAlphaBaseURL)
	registryURL := resolve(c.String("registry-url"), c.IsSet("registry-url"), cfg.RegistryURL)
	sourceBaseURL := resolve(c.String("source-base-url"), c.IsSet("source-base-url"), cfg.SourceBaseURL)

	registry := descriptor.Registry{}
	if registryURL != "" {
		printStep(fmt.Sprintf("Fetching suite descriptors from %s", registryURL))
		registry = descriptor.NewLoader(registryURL).Load(c.Context)
	}

	scanner := &results.Scanner{
		ResultsDir:     resultsDir,
		BaseURL:        strings.TrimRight(baseURL, "/"),
		NoAlphaBaseURL: strings.TrimRight(noAlphaBaseURL, "/"),
		Registry:       registry,
	}

	suites, err := scanner.Scan()
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Found %d suite(s) in %s", len(suites), resultsDir))

	if err := site.NewWriter(suites, outputDir, sourceBaseURL).Write(); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Site written to %s", outputDir))

	return nil
}

// loadWorkspaceConfig loads the --config file when given, and otherwise
// looks for a config.yaml in the working directory.
func loadWorkspaceConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.LoadFromDir(".")
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
