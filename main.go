package main

import (
	"github.com/alecthomas/kong"

	"pngsecret/secret"
)

func main() {
	var cli secret.CLICmd
	kctx := kong.Parse(&cli,
		kong.Name("pngsecret"),
		kong.Description("A simple tool to embed secret bytes into raster images."),
	)
	kctx.FatalIfErrorf(kctx.Run())
}
