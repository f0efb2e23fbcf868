package main

import (
	"context"
	"github.com/alecthomas/kong"
	"os"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("versioner"),
		kong.Description("Rewrites module descriptor versions read during a build"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	global := NewGlobal(context.Background(), os.Stdout, os.Stderr, cli.Verbose)
	ctx.FatalIfErrorf(ctx.Run(global, cli))
}
