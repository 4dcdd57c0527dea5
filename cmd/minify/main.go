package main

import (
	"fmt"
	"log"
	"os"

	"github.com/woozymasta/dzmeasure/assets"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Output string `short:"o" long:"out" description:"Output file path" default:"index.html"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	finalHTML, err := assets.Build(assets.Minifier())
	if err != nil {
		log.Fatal("error build page:", err)
	}

	err = os.WriteFile(opts.Output, finalHTML, 0644)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("minify done")
}
