package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Emit pseudo-random values to stdout"`
	Bench    BenchCmd    `cmd:"" help:"Benchmark generator throughput"`
	Serve    ServeCmd    `cmd:"" help:"Stream generator output over WebSocket"`
	Digest   DigestCmd   `cmd:"" help:"Hash files with the digest wrappers"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cellmorph"),
		kong.Description("Utilities for the cellmorph image-analysis toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    version,
			"generators": generatorEnum(),
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
