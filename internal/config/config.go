package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/pdfproof/internal/annotate"
	"github.com/nao1215/pdfproof/internal/model"
	"github.com/nao1215/pdfproof/internal/proofread"
	"github.com/nao1215/pdfproof/internal/report"
	"github.com/nao1215/pdfproof/internal/scan"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pdfproof"

	// DefaultMarkSet flags Japanese punctuation, for documents that must
	// use "," and ".".
	DefaultMarkSet = model.MarkSetJapanese

	// DefaultConcurrency keeps proofreading requests strictly sequential.
	DefaultConcurrency = 1

	// APIKeyEnv is the environment variable holding the proofreading API key.
	APIKeyEnv = "PDFPROOF_API_KEY"
)

// Config holds all options of a run. It is populated from defaults, the
// environment, the configuration file and CLI flags, then passed down.
type Config struct {
	// MarkSet is the punctuation family treated as wrong.
	MarkSet model.MarkSet

	// CheckTypos sends every sentence to the proofreading service.
	CheckTypos bool

	// CheckIndentation enables the indentation scan.
	CheckIndentation bool

	// IndentThreshold is the expected left indentation in points.
	IndentThreshold float64

	// Endpoint is the proofreading service URL.
	Endpoint string

	// APIKey is sent with every proofreading request. It is never logged.
	APIKey string

	// Sensitivity is the optional sensitivity parameter of the service.
	Sensitivity string

	// Timeout bounds one proofreading request.
	Timeout time.Duration

	// Concurrency is the number of proofreading requests in flight.
	Concurrency int

	// ProxyAddress routes proofreading requests through a SOCKS5 proxy
	// in "host:port" format. Empty means direct.
	ProxyAddress string

	// Suffix is appended to the source stem to name the highlighted copy.
	Suffix string

	// SummaryPath is the summary PDF written once per run.
	SummaryPath string

	// FontPath is the TTF font for the summary. Empty searches the font
	// directories and falls back to the embedded font.
	FontPath string

	// MarkdownFile, when set, receives a Markdown summary of the run.
	MarkdownFile string

	// JSONReport prints the run report as JSON on stdout.
	JSONReport bool

	// Verbose enables debug logging and per-issue console output.
	Verbose bool

	// ConfigFilePath is the explicit configuration file, if any.
	ConfigFilePath string

	// Targets are the PDF files to process, in order.
	Targets []string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		MarkSet:         DefaultMarkSet,
		CheckTypos:      true,
		IndentThreshold: scan.DefaultIndentThreshold,
		Endpoint:        proofread.DefaultEndpoint,
		Timeout:         proofread.DefaultTimeout,
		Concurrency:     DefaultConcurrency,
		Suffix:          annotate.DefaultSuffix,
		SummaryPath:     report.DefaultSummaryPath,
	}
}

// XDGConfigDir returns the XDG config directory for pdfproof.
// On Linux: ~/.config/pdfproof
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if !c.MarkSet.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidMarkSet, c.MarkSet)
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency < 1 {
		return ErrInvalidConcurrency
	}
	if c.IndentThreshold < 0 {
		return ErrInvalidIndentThreshold
	}
	if c.Suffix == "" {
		return ErrEmptySuffix
	}
	if c.SummaryPath == "" {
		return ErrEmptySummaryPath
	}
	if c.CheckTypos && c.Endpoint == "" {
		return ErrMissingEndpoint
	}
	return nil
}
