package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nao1215/pdfproof/internal/model"
)

// File represents the YAML configuration file.
//
// Example:
//
//	marks: japanese
//	typo: true
//	indent: false
//	indentThreshold: 72
//	proofread:
//	  endpoint: https://api.a3rt.recruit.co.jp/proofreading/v2/typo
//	  timeout: 60s
//	  concurrency: 2
//	output:
//	  suffix: _highlighted
//	  summary: summary_report.pdf
//
// Unset fields leave the corresponding Config value unchanged.
type File struct {
	Marks           string          `yaml:"marks"`
	Typo            *bool           `yaml:"typo"`
	Indent          *bool           `yaml:"indent"`
	IndentThreshold *float64        `yaml:"indentThreshold"`
	Proofread       ProofreadConfig `yaml:"proofread"`
	Output          OutputConfig    `yaml:"output"`
}

// ProofreadConfig configures the proofreading client.
type ProofreadConfig struct {
	Endpoint    string `yaml:"endpoint"`
	APIKey      string `yaml:"apiKey"`
	Sensitivity string `yaml:"sensitivity"`
	// Timeout uses time.ParseDuration syntax, for example "30s".
	Timeout     string `yaml:"timeout"`
	Concurrency int    `yaml:"concurrency"`
	Proxy       string `yaml:"proxy"`
}

// OutputConfig configures where results are written.
type OutputConfig struct {
	Suffix   string `yaml:"suffix"`
	Summary  string `yaml:"summary"`
	Font     string `yaml:"font"`
	Markdown string `yaml:"markdown"`
}

// Apply merges the file into cfg. Only fields present in the file are copied.
func (f *File) Apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	if strings.TrimSpace(f.Marks) != "" {
		m, err := model.ParseMarkSet(f.Marks)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidMarkSet, f.Marks)
		}
		cfg.MarkSet = m
	}
	if f.Typo != nil {
		cfg.CheckTypos = *f.Typo
	}
	if f.Indent != nil {
		cfg.CheckIndentation = *f.Indent
	}
	if f.IndentThreshold != nil {
		cfg.IndentThreshold = *f.IndentThreshold
	}

	p := f.Proofread
	if p.Endpoint != "" {
		cfg.Endpoint = p.Endpoint
	}
	if p.APIKey != "" {
		cfg.APIKey = p.APIKey
	}
	if p.Sensitivity != "" {
		cfg.Sensitivity = p.Sensitivity
	}
	if p.Timeout != "" {
		d, err := time.ParseDuration(p.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, p.Timeout)
		}
		cfg.Timeout = d
	}
	if p.Concurrency != 0 {
		cfg.Concurrency = p.Concurrency
	}
	if p.Proxy != "" {
		cfg.ProxyAddress = p.Proxy
	}

	o := f.Output
	if o.Suffix != "" {
		cfg.Suffix = o.Suffix
	}
	if o.Summary != "" {
		cfg.SummaryPath = o.Summary
	}
	if o.Font != "" {
		cfg.FontPath = o.Font
	}
	if o.Markdown != "" {
		cfg.MarkdownFile = o.Markdown
	}
	return nil
}
