package scan

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/pdfproof/internal/model"
	"github.com/nao1215/pdfproof/internal/proofread"
)

// TypoScanner checks every sentence of a document with a Checker.
type TypoScanner struct {
	checker     Checker
	segmenter   Segmenter
	concurrency int
	logger      *slog.Logger
}

// TypoOption configures a TypoScanner.
type TypoOption func(*TypoScanner)

// WithConcurrency sets how many sentences may be in flight at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) TypoOption {
	return func(s *TypoScanner) {
		s.concurrency = n
	}
}

// WithLogger sets the logger for failed requests.
func WithLogger(logger *slog.Logger) TypoOption {
	return func(s *TypoScanner) {
		s.logger = logger
	}
}

// NewTypoScanner creates a TypoScanner.
func NewTypoScanner(checker Checker, segmenter Segmenter, opts ...TypoOption) *TypoScanner {
	s := &TypoScanner{
		checker:     checker,
		segmenter:   segmenter,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.concurrency < 1 {
		s.concurrency = 1
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// sentenceJob is one sentence to check and what came back.
type sentenceJob struct {
	page     int
	sentence string

	done   bool
	result *proofread.Result
	err    error
}

// Scan checks every sentence of doc, page by page.
//
// Sentences are checked by up to concurrency workers, but issues and log
// entries are assembled in sentence order, so the output does not depend
// on the concurrency. If ctx is cancelled the sentences answered before
// the first unanswered one are reported and ctx.Err() is returned.
func (s *TypoScanner) Scan(ctx context.Context, doc TextSource) ([]model.Issue, []model.LogEntry, error) {
	jobs := s.collect(doc)
	s.check(ctx, jobs)

	var (
		issues  []model.Issue
		entries []model.LogEntry
	)
	for i := range jobs {
		job := &jobs[i]
		if !job.done || (ctx.Err() != nil && isContextError(job.err)) {
			return issues, entries, ctx.Err()
		}
		is, es := s.assemble(doc, job)
		issues = append(issues, is...)
		entries = append(entries, es...)
	}
	return issues, entries, ctx.Err()
}

// collect segments every non-blank page into sentence jobs.
func (s *TypoScanner) collect(doc TextSource) []sentenceJob {
	var jobs []sentenceJob
	for page := range doc.PageCount() {
		text := doc.PageText(page)
		if strings.TrimSpace(text) == "" {
			continue
		}
		for _, sentence := range s.segmenter.Split(text) {
			jobs = append(jobs, sentenceJob{page: page, sentence: sentence})
		}
	}
	return jobs
}

// check submits the jobs in order through a bounded pool. Submission stops
// once ctx is done.
func (s *TypoScanner) check(ctx context.Context, jobs []sentenceJob) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range jobs {
		if ctx.Err() != nil {
			break
		}
		job := &jobs[i]
		g.Go(func() error {
			job.result, job.err = s.checker.Check(gctx, job.sentence)
			job.done = true
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never return an error
}

// assemble turns one answered sentence into issues and log entries.
func (s *TypoScanner) assemble(doc TextSource, job *sentenceJob) ([]model.Issue, []model.LogEntry) {
	if job.err != nil {
		s.logger.Warn("proofreading request failed",
			"page", job.page,
			"error", job.err,
		)
		return nil, []model.LogEntry{model.PageEntry(job.page, "Failed to send API request.")}
	}
	if !job.result.HasAlerts() {
		return nil, []model.LogEntry{model.PageEntry(job.page, "No alerts found for this sentence.")}
	}

	var (
		issues  []model.Issue
		entries []model.LogEntry
	)
	for _, alert := range job.result.Alerts {
		rects := doc.Search(job.page, alert.Word)
		if len(rects) == 0 {
			entries = append(entries, model.PageEntry(job.page,
				"The character '%s' was flagged but not found on the page.", alert.Word))
			continue
		}
		for _, rect := range rects {
			issues = append(issues, model.Issue{
				Page:      job.page,
				Character: alert.Word,
				Rect:      rect,
				Kind:      model.KindTypo,
			})
			entries = append(entries, model.PageEntry(job.page, "The character '%s' is incorrect.", alert.Word))
		}
	}
	return issues, entries
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
