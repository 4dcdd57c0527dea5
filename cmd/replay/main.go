package main

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/dzmeasure/internal/config"
	"github.com/woozymasta/dzmeasure/internal/logger"
	"github.com/woozymasta/dzmeasure/internal/session"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Input      string `short:"i" long:"in"     description:"Event script path. Reads from stdin if empty"`
	Output     string `short:"o" long:"out"    description:"GeoJSON output path. Writes to stdout if empty"`
	Format     string `short:"f" long:"format" description:"Event script format" choice:"json" choice:"yaml" default:"json"`
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

	opts.Logger.Setup()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Replay failed")
	}
}

func run(opts Options, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Read Input
	var inputData []byte
	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
	} else {
		inputData, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	events, err := session.ParseScript(inputData, opts.Format)
	if err != nil {
		return err
	}

	out := session.OutboxFunc(func(cmd session.Command) error {
		log.Trace().Str("op", cmd.Op).Str("id", cmd.ID).Msg("Command")
		return nil
	})

	sess := session.New(out, session.Options{
		Math:        cfg.Math(),
		Offsets:     cfg.Offsets(),
		DefaultKind: cfg.DefaultKind(),
	})
	sess.Open()
	rejected := sess.Replay(events)
	sess.Close()

	outputData, err := sess.Export()
	if err != nil {
		return err
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else if _, err := stdout.Write(append(outputData, '\n')); err != nil {
		return err
	}

	log.Info().
		Int("events", len(events)).
		Int("rejected", rejected).
		Int("features", len(sess.Features())).
		Str("out", opts.Output).
		Msg("Replay finished")

	return nil
}
