// mobius - Mobius strip surface geometry engine
//
// Samples a parametric Mobius strip, prints its numerically estimated surface
// area and edge length, and renders the surface to a PNG.
//
// Build:
//   go build -o mobius ./cmd/mobius
//
// Examples:
//   mobius                                  # R=1, w=0.3, n=200 example run
//   mobius compute -R 2 -w 0.5 -n 400
//   mobius converge --resolutions 50,200,800
//   mobius export --format pdf --out strip.pdf

package main

import (
	"os"

	"github.com/chandramohan-1/mobius-strip/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
