// Package cli provides the command-line interface for golden-pages.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enables verbose logging information",
		EnvVars: []string{"GOLDEN_PAGES_VERBOSE"},
	},
	&cli.BoolFlag{
		Name:  "no-ansi",
		Usage: "Disable ANSI colors",
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "golden-pages",
		Usage:   "Publish nxdk_pgraph_tests golden results as a site or wiki",
		Version: Version,
		Description: `golden-pages turns a directory tree of golden result images into
static documentation: an HTML site for GitHub Pages or Markdown
pages for a GitHub wiki.

Examples:
  golden-pages site results/ site-output/
  golden-pages wiki results/ wiki-checkout/
  golden-pages site results/ out/ --registry-url ""`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			siteCommand,
			wikiCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolve picks an option value with CLI-over-config precedence: a flag
// given on the command line wins, then a non-empty config value, then the
// flag's default.
func resolve(flagValue string, flagSet bool, configValue string) string {
	if flagSet {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return flagValue
}
