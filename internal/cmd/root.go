// Package cmd wires the dvbsenc command-line interface: flag/config
// loading, logger setup, and driving the streamer to completion.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/sdrtk/dvbsenc/dvbs"
	"github.com/sdrtk/dvbsenc/internal/config"
	"github.com/sdrtk/dvbsenc/internal/streamer"
	"github.com/sdrtk/dvbsenc/utils"
)

// NewCommand builds the root dvbsenc command.
func NewCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dvbsenc",
		Short:   "Encode an MPEG transport stream into DVB-S baseband symbols",
		Version: version,
		RunE:    runRoot,
	}

	flags := cmd.Flags()
	flags.String("config", "", "path to a YAML config file")
	flags.String("code-rate", "", "inner convolutional code rate: 1/2, 2/3, 3/4, 5/6, 7/8")
	flags.StringP("input", "i", "", "input transport-stream file, - for stdin")
	flags.StringP("output", "o", "", "output IQ-bit file, - for stdout")
	flags.String("log-level", "", "debug, info, warn, or error")

	return cmd
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	setupLogger(cfg)

	rate, err := parseCodeRate(cfg.CodeRate)
	if err != nil {
		return err
	}

	src, closeSrc, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer closeSrc()

	dst, closeDst, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeDst()

	enc := dvbs.NewEncoder()
	enc.SetCodeRate(rate)

	stop := make(chan struct{})
	go func() {
		utils.WaitForSignal()
		close(stop)
	}()

	stats, err := streamer.Run(src, dst, enc, stop)
	if err != nil {
		return fmt.Errorf("streaming: %w", err)
	}

	slog.Info("encoding complete",
		"packetsRead", stats.PacketsRead,
		"packetsSkipped", stats.PacketsSkipped,
		"symbolsWritten", stats.SymbolsWritten,
		"codeRate", rate,
	)
	return nil
}

// loadConfig overlays the optional --config file under config.Default,
// then applies any flags the caller explicitly set on top, so flags
// always win over the file and the file always wins over defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, config.Default())
	if err != nil {
		return cfg, err
	}

	if flags.Changed("code-rate") {
		cfg.CodeRate, _ = flags.GetString("code-rate")
	}
	if flags.Changed("input") {
		cfg.Input, _ = flags.GetString("input")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return cfg, nil
}

func setupLogger(cfg config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
}

func parseCodeRate(s string) (dvbs.CodeRate, error) {
	switch s {
	case "1/2":
		return dvbs.Rate1_2, nil
	case "2/3":
		return dvbs.Rate2_3, nil
	case "3/4":
		return dvbs.Rate3_4, nil
	case "5/6":
		return dvbs.Rate5_6, nil
	case "7/8":
		return dvbs.Rate7_8, nil
	default:
		return 0, fmt.Errorf("unknown code rate %q", s)
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
