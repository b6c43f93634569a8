package main

import "github.com/nxdk-pgraph/golden-pages/pkg/cli"

func main() {
	cli.Execute()
}
