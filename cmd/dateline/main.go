package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/dateline/internal/config"
	"github.com/crimson-sun/dateline/internal/logging"
	"github.com/crimson-sun/dateline/internal/output"
	filedest "github.com/crimson-sun/dateline/internal/output/file"
	"github.com/crimson-sun/dateline/internal/output/multi"
	"github.com/crimson-sun/dateline/internal/output/stdout"
	"github.com/crimson-sun/dateline/internal/parser"
	"github.com/crimson-sun/dateline/internal/pipeline"
	"github.com/crimson-sun/dateline/internal/source"

	// Register source implementations.
	_ "github.com/crimson-sun/dateline/internal/source/file"
	_ "github.com/crimson-sun/dateline/internal/source/stdin"
)

func main() {
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "dateline",
		Short: "Convert `date` command output to JSON",
		Long: "dateline reads the output of the system `date` command and emits it\n" +
			"as structured JSON with derived epoch timestamps. Pipe `date` into it:\n\n" +
			"    date | dateline",
		SilenceUsage:  true,
		SilenceErrors: true, // run() already logs failures
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&cfg.Parse.Raw, "raw", "r", cfg.Parse.Raw, "emit the unprocessed token mapping")
	flags.StringVar(&cfg.Parse.Location, "location", cfg.Parse.Location, "IANA timezone for the naive epoch (default: host local)")
	flags.StringVarP(&cfg.Source.Path, "input", "i", cfg.Source.Path, "read from a file instead of stdin")
	flags.StringVarP(&cfg.Output.Format, "output", "o", cfg.Output.Format, "output destination: stdout, file, or multi")
	flags.StringVar(&cfg.Output.Path, "output-path", cfg.Output.Path, "path for the file output")
	flags.BoolVarP(&cfg.Output.Pretty, "pretty", "p", cfg.Output.Pretty, "pretty-print JSON")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logging.Init(cfg.Output.Format == "stdout", logging.ParseLevel(cfg.Log.Level))
	log := logging.Logger()

	// --input implies the file source.
	if cfg.Source.Path != "" {
		cfg.Source.Provider = "file"
	}

	opts := parser.Options{Raw: cfg.Parse.Raw}
	if cfg.Parse.Location != "" {
		loc, err := time.LoadLocation(cfg.Parse.Location)
		if err != nil {
			log.Error().Err(err).Str("location", cfg.Parse.Location).Msg("unknown location")
			return err
		}
		opts.Location = loc
	}

	ctor, err := source.Get(cfg.Source.Provider)
	if err != nil {
		log.Error().Err(err).Msg("failed to get source")
		return err
	}
	src := ctor()

	out, err := buildOutput(cfg.Output)
	if err != nil {
		log.Error().Err(err).Msg("failed to build output")
		return err
	}

	p := pipeline.New(src, out, opts)
	defer p.Close()

	srcCfg := source.Config{
		Provider: cfg.Source.Provider,
		Path:     cfg.Source.Path,
	}
	log.Debug().Str("source", cfg.Source.Provider).Str("output", cfg.Output.Format).Msg("starting")
	if err := p.Run(ctx, srcCfg); err != nil {
		log.Error().Err(err).Msg("parse failed")
		return err
	}
	return nil
}

// buildOutput resolves the configured output destination.
func buildOutput(cfg config.OutputConfig) (output.Output, error) {
	switch cfg.Format {
	case "file":
		return filedest.New(cfg.Path)
	case "multi":
		f, err := filedest.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return multi.New(stdout.New(cfg.Pretty), f), nil
	default:
		return stdout.New(cfg.Pretty), nil
	}
}
