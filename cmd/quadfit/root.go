package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/quadfit/format"
	"github.com/arloliu/quadfit/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	logger *zap.Logger
	// ownLogger is set when the logger was built from --log-level and must be synced.
	ownLogger bool

	logLevel     string
	noChart      bool
	outDir       string
	export       bool
	exportFormat string
	compression  string

	reportFormat    format.ReportFormat
	compressionType format.CompressionType
}

// newRootCmd builds the command tree. A nil logger is built from --log-level.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	rootCmd := &cobra.Command{
		Use:           "quadfit",
		Short:         "Simpson 1/3 integration and linear regression demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownLogger {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolVar(&a.noChart, "no-chart", false, "Skip PNG figure rendering")
	flags.StringVar(&a.outDir, "out-dir", ".", "Directory for figures and exports")
	flags.BoolVar(&a.export, "export", false, "Write a machine-readable export next to the figures")
	flags.StringVar(&a.exportFormat, "export-format", "json", "Export format (json, columnar, xlsx)")
	flags.StringVar(&a.compression, "compression", "none", "Export compression (none, zstd, s2, lz4)")

	rootCmd.AddCommand(
		newSimpsonCmd(a),
		newRegressionCmd(a),
	)

	return rootCmd
}

func (a *app) setup() error {
	var err error
	if a.reportFormat, err = format.ParseReportFormat(a.exportFormat); err != nil {
		return err
	}
	if a.compressionType, err = format.ParseCompression(a.compression); err != nil {
		return err
	}

	if a.logger != nil {
		return nil
	}

	level, err := zapcore.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	if a.logger, err = cfg.Build(); err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.ownLogger = true

	return nil
}

// prepareOutDir creates the output directory when figures or exports are requested.
func (a *app) prepareOutDir() error {
	if a.noChart && !a.export {
		return nil
	}
	if err := os.MkdirAll(a.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	return nil
}

// writeExport saves r under the output directory as name plus the format extension.
func (a *app) writeExport(name string, r report.Exportable) (path string, err error) {
	path = filepath.Join(a.outDir, name+format.Extension(a.reportFormat, a.compressionType))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
	}()

	stats, err := report.Export(f, r, a.reportFormat, a.compressionType)
	if err != nil {
		return "", err
	}

	a.logger.Info("Report exported",
		zap.String("path", path),
		zap.Stringer("format", a.reportFormat),
		zap.Stringer("compression", a.compressionType),
		zap.Int("original_bytes", stats.OriginalSize),
		zap.Int("written_bytes", stats.CompressedSize),
	)

	return path, nil
}

func footer(width int) string {
	rule := strings.Repeat("=", width)
	return "\n" + rule + "\nPROGRAM SELESAI\n" + rule + "\n"
}
