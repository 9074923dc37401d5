package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/pdfproof/internal/annotate"
	"github.com/nao1215/pdfproof/internal/config"
	"github.com/nao1215/pdfproof/internal/discover"
	"github.com/nao1215/pdfproof/internal/log"
	"github.com/nao1215/pdfproof/internal/model"
	"github.com/nao1215/pdfproof/internal/pdfdoc"
	"github.com/nao1215/pdfproof/internal/pipeline"
	"github.com/nao1215/pdfproof/internal/proofread"
	"github.com/nao1215/pdfproof/internal/report"
	"github.com/nao1215/pdfproof/internal/scan"
	"github.com/nao1215/pdfproof/internal/segment"
)

var (
	// errAllFailed is returned when no document could be processed.
	errAllFailed = errors.New("no document could be processed")

	// errInvalidLogFormat is returned for an unknown --log-format value.
	errInvalidLogFormat = errors.New(`log format must be "text" or "json"`)
)

// Values accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Proofread PDF documents and highlight the findings",
		Long: `Check proofreads every given PDF. Directories are searched recursively.

For each document pdfproof
- highlights punctuation marks from the wrong family (--marks),
- sends every sentence to the proofreading service and highlights the
  flagged characters (disable with --no-typo),
- optionally reports lines with unexpected left indentation (--indent),
and saves the result as "<name>_highlighted.pdf" next to the source.
A summary PDF with the findings of the whole run is written at the end.

Without a path on an interactive terminal, the PDFs under the current
directory are listed and you pick one.

Examples:
  # Check one document; the text must use "," and "."
  pdfproof check paper.pdf

  # The text must use "、" and "。"
  pdfproof check --marks latin paper.pdf

  # Check a directory without the proofreading service
  pdfproof check --no-typo ./drafts

  # Also write a Markdown summary and print JSON
  pdfproof check --markdown summary.md --json paper.pdf`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Scan flags
	cmd.Flags().StringP("marks", "m", config.DefaultMarkSet.String(),
		`Punctuation family treated as wrong: "latin" or "japanese"`)
	cmd.Flags().Bool("no-typo", false,
		"Skip the proofreading service")
	cmd.Flags().Bool("indent", false,
		"Report lines whose first word starts right of --indent-threshold")
	cmd.Flags().Float64("indent-threshold", scan.DefaultIndentThreshold,
		"Expected left indentation in points")

	// Proofreading service flags
	cmd.Flags().String("endpoint", proofread.DefaultEndpoint,
		"Proofreading service URL")
	cmd.Flags().String("api-key", "",
		"Proofreading API key (default: $"+config.APIKeyEnv+")")
	cmd.Flags().String("sensitivity", "",
		"Sensitivity parameter of the proofreading service")
	cmd.Flags().DurationP("timeout", "t", proofread.DefaultTimeout,
		"Timeout for each proofreading request")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency,
		"Number of proofreading requests in flight")
	cmd.Flags().String("proxy", "",
		"SOCKS5 proxy for the proofreading service (host:port)")

	// Output flags
	cmd.Flags().String("suffix", annotate.DefaultSuffix,
		"Suffix appended to the name of each highlighted copy")
	cmd.Flags().StringP("summary", "s", report.DefaultSummaryPath,
		"Summary PDF path")
	cmd.Flags().String("font", "",
		"TTF font for the summary PDF (default: search system font directories)")
	cmd.Flags().String("markdown", "",
		"Also write a Markdown summary to this file")
	cmd.Flags().Bool("json", false,
		"Print the run report as JSON on stdout")
	cmd.Flags().String("log-format", logFormatText,
		`Format of the diagnostic log on stderr: "text" or "json"`)

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pdfproof.yaml, then XDG config, then home directory)")

	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd, getVerboseFlag(cmd))
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	slog.SetDefault(logger)

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	cfg.Targets, err = resolveTargets(cmd, cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	console := cmd.OutOrStdout()
	if cfg.JSONReport {
		console = cmd.ErrOrStderr()
	}
	return runCheck(ctx, cfg, console, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// newLogger builds the diagnostic logger selected by --log-format.
func newLogger(cmd *cobra.Command, verbose bool) (*slog.Logger, error) {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return nil, err
	}
	switch format {
	case logFormatText:
		return log.NewSecureLogger(cmd.ErrOrStderr(), verbose), nil
	case logFormatJSON:
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose), nil
	default:
		return nil, fmt.Errorf("%w: %q", errInvalidLogFormat, format)
	}
}

// buildConfig resolves the configuration: defaults, then the environment,
// then the configuration file, then flags the user actually set.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)

	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = explicit

	// An explicit config path must exist; otherwise a missing file is fine.
	if path := config.FindConfigFile(explicit); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	} else if explicit != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, explicit)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Targets = args
	return cfg, nil
}

// applyFlags copies the flags set on the command line into cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("marks") {
		name, _ := flags.GetString("marks") //nolint:errcheck // flag is registered
		if cfg.MarkSet, err = model.ParseMarkSet(name); err != nil {
			return fmt.Errorf("%w: %q", config.ErrInvalidMarkSet, name)
		}
	}
	if flags.Changed("no-typo") {
		noTypo, _ := flags.GetBool("no-typo") //nolint:errcheck // flag is registered
		cfg.CheckTypos = !noTypo
	}
	if flags.Changed("indent") {
		if cfg.CheckIndentation, err = flags.GetBool("indent"); err != nil {
			return err
		}
	}
	if flags.Changed("indent-threshold") {
		if cfg.IndentThreshold, err = flags.GetFloat64("indent-threshold"); err != nil {
			return err
		}
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"endpoint", &cfg.Endpoint},
		{"api-key", &cfg.APIKey},
		{"sensitivity", &cfg.Sensitivity},
		{"proxy", &cfg.ProxyAddress},
		{"suffix", &cfg.Suffix},
		{"summary", &cfg.SummaryPath},
		{"font", &cfg.FontPath},
		{"markdown", &cfg.MarkdownFile},
	}
	for _, s := range strs {
		if !flags.Changed(s.name) {
			continue
		}
		if *s.dst, err = flags.GetString(s.name); err != nil {
			return err
		}
	}

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return err
		}
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return err
	}
	return nil
}

// resolveTargets expands the path arguments into PDF files. Without
// arguments the operator picks a file when stdin is a terminal.
func resolveTargets(cmd *cobra.Command, cfg *config.Config) ([]string, error) {
	if len(cfg.Targets) > 0 {
		return discover.Find(cfg.Targets, cfg.Suffix)
	}

	in := cmd.InOrStdin()
	if !discover.IsTerminal(in) {
		return nil, config.ErrNoTarget
	}
	candidates, err := discover.Find([]string{"."}, cfg.Suffix)
	if err != nil {
		return nil, err
	}
	choice, err := discover.Pick(in, cmd.OutOrStdout(), candidates)
	if err != nil {
		return nil, err
	}
	return []string{choice}, nil
}

// runCheck processes every target and writes the run level reports.
// progress receives the console lines; out receives the JSON report.
func runCheck(ctx context.Context, cfg *config.Config, progress, out io.Writer, logger *slog.Logger) error {
	logger.Info("starting check",
		"targets", len(cfg.Targets),
		"marks", cfg.MarkSet.String(),
		"typo", cfg.CheckTypos,
		"indent", cfg.CheckIndentation,
	)

	console := report.NewSimpleWriter(progress, report.WithVerbose(cfg.Verbose))
	runner, err := newRunner(cfg, console, logger)
	if err != nil {
		return err
	}
	run := runner.Run(ctx, cfg.Targets)
	writeErr := writeReports(cfg, run, console, out, logger)

	if ctx.Err() != nil {
		return fmt.Errorf("check interrupted: %w", ctx.Err())
	}
	if run.AllFailed() {
		return errAllFailed
	}
	return writeErr
}

// newRunner wires the document pipeline from the configuration.
func newRunner(cfg *config.Config, observer pipeline.Observer, logger *slog.Logger) (*pipeline.Runner, error) {
	opts := []pipeline.RunnerOption{
		pipeline.WithMarkSet(cfg.MarkSet),
		pipeline.WithObserver(observer),
		pipeline.WithRunnerLogger(logger),
	}

	if cfg.CheckTypos {
		client, err := proofread.NewClient(
			proofread.WithEndpoint(cfg.Endpoint),
			proofread.WithAPIKey(cfg.APIKey),
			proofread.WithSensitivity(cfg.Sensitivity),
			proofread.WithTimeout(cfg.Timeout),
			proofread.WithProxy(cfg.ProxyAddress),
			proofread.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create proofreading client: %w", err)
		}
		segmenter, err := segment.New()
		if err != nil {
			return nil, fmt.Errorf("failed to load sentence model: %w", err)
		}
		if cfg.APIKey == "" {
			logger.Warn("no proofreading API key configured", "env", config.APIKeyEnv)
		}
		opts = append(opts, pipeline.WithTypoScanner(scan.NewTypoScanner(client, segmenter,
			scan.WithConcurrency(cfg.Concurrency),
			scan.WithLogger(logger),
		)))
	}
	if cfg.CheckIndentation {
		opts = append(opts, pipeline.WithIndentation(cfg.IndentThreshold))
	}

	open := func(path string) (pipeline.Document, error) {
		doc, err := pdfdoc.Open(path, pdfdoc.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	annotator := annotate.New(annotate.WithSuffix(cfg.Suffix), annotate.WithLogger(logger))
	return pipeline.NewRunner(open, annotator, opts...), nil
}

// writeReports writes the console summary, the optional Markdown and JSON
// reports and the summary PDF. Every report is attempted and all failures
// are returned.
func writeReports(cfg *config.Config, run *model.RunReport, console report.Writer, out io.Writer, logger *slog.Logger) error {
	var errs []error

	writers := []report.Writer{console}
	var markdownFile *os.File
	if cfg.MarkdownFile != "" {
		f, err := createReportFile(cfg.MarkdownFile)
		if err != nil {
			logger.Error("failed to create markdown report", "path", cfg.MarkdownFile, "error", err)
			errs = append(errs, err)
		} else {
			markdownFile = f
			writers = append(writers, report.NewMarkdownWriter(f))
		}
	}
	if cfg.JSONReport {
		writers = append(writers, report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithVersion(getVersion())))
	}
	if _, err := report.NewMultiWriter(writers...).Write(run); err != nil {
		logger.Error("failed to write reports", "error", err)
		errs = append(errs, fmt.Errorf("failed to write reports: %w", err))
	}
	if markdownFile != nil {
		if err := markdownFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to write %s: %w", cfg.MarkdownFile, err))
		}
	}

	pdfOpts := []report.PDFWriterOption{report.WithLogger(logger)}
	if cfg.FontPath != "" {
		pdfOpts = append(pdfOpts, report.WithFont(cfg.FontPath))
	}
	if err := report.NewPDFWriter(pdfOpts...).WriteLog(cfg.SummaryPath, run.Log(), run.Started); err != nil {
		logger.Error("failed to write summary", "path", cfg.SummaryPath, "error", err)
		errs = append(errs, fmt.Errorf("failed to write summary %s: %w", cfg.SummaryPath, err))
	}

	return errors.Join(errs...)
}

// createReportFile creates path and its parent directory, readable only
// by the owner.
func createReportFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}
