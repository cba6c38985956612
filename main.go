package main

import (
	"flag"
	"fmt"
	"os"
	"othello/engine"
	"othello/experiments/metrics"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	script     string
	metricsDir string
	logLevel   string
	quiet      bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.script, "script", "", "YAML move script (defaults to the bundled demo match)")
	flag.StringVar(&cfg.metricsDir, "metrics", "", "Directory for CSV game and move records, disabled if empty")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.quiet, "quiet", false, "Do not print the board after each move")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("othello failed")
		os.Exit(1)
	}
}

func run(cfg config) error {
	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	script := engine.DefaultScript()
	if cfg.script != "" {
		script, err = engine.LoadScript(cfg.script)
		if err != nil {
			return err
		}
	}

	collector := metrics.NewDummyCollector()
	if cfg.metricsDir != "" {
		collector = metrics.NewCollector()
	}

	options := []engine.Option{engine.WithMetrics(collector)}
	if cfg.quiet {
		options = append(options, engine.WithQuiet())
	}
	e := engine.New(os.Stdout, options...)

	if _, err := e.Run(script); err != nil {
		return err
	}

	if cfg.metricsDir == "" {
		return nil
	}
	return writeRecords(cfg.metricsDir, collector, e)
}

func writeRecords(dir string, collector metrics.Collector, e *engine.Engine) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create metrics writer: %w", err)
	}

	err = writer.WriteGameRecords([]metrics.GameRecord{{ID: 1, GameMetric: collector.Complete(e.Session)}})
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	moves := collector.Moves()
	records := make([]metrics.MoveRecord, len(moves))
	for i, mm := range moves {
		records[i] = metrics.MoveRecord{Game: 1, MoveMetric: mm}
	}
	err = writer.WriteMoveRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}
