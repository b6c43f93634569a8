package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nxdk-pgraph/golden-pages/pkg/logger"
	"github.com/nxdk-pgraph/golden-pages/pkg/results"
	"github.com/nxdk-pgraph/golden-pages/pkg/wiki"
)

var wikiCommand = &cli.Command{
	Name:      "wiki",
	Usage:     "Generate GitHub wiki Markdown pages from golden results",
	ArgsUsage: "<results-dir> <output-dir>",
	Description: `Scan a results directory for golden images and regenerate the
wiki pages: a Home page listing every suite plus one Results-<suite>
page per suite embedding its images.

The output directory is treated as fully owned: existing Markdown
pages are deleted before writing, so the directory should be a
dedicated wiki checkout.

Examples:
  golden-pages wiki results/ wiki-checkout/`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to workspace config.yaml",
		},
		&cli.StringFlag{
			Name:    "raw-base-url",
			Usage:   "Base URL at which the raw image content may be publicly accessed",
			Value:   "https://raw.githubusercontent.com/abaire/nxdk_pgraph_tests_golden_results/main",
			EnvVars: []string{"GOLDEN_PAGES_RAW_BASE_URL"},
		},
	},
	Action: runWiki,
}

func runWiki(c *cli.Context) error {
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

	rawBaseURL := resolve(c.String("raw-base-url"), c.IsSet("raw-base-url"), cfg.RawBaseURL)

	logger.Debug("Generating wiki markdown in '%s' using artifacts in '%s'", outputDir, resultsDir)

	resultsBySuite, err := results.FindArtifacts(resultsDir)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Found %d suite(s) in %s", len(resultsBySuite), resultsDir))

	if err := wiki.NewWriter(resultsDir, outputDir, rawBaseURL).Write(resultsBySuite); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Wiki pages written to %s", outputDir))

	return nil
}
