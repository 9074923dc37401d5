package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/pdfproof/internal/model"
)

// createTestRun creates a run with one annotated and one failed document.
func createTestRun() *model.RunReport {
	run := model.NewRunReport()

	ok := model.NewDocumentReport("docs/thesis.pdf")
	ok.PageCount = 2
	ok.Issues = []model.Issue{
		{Page: 0, Character: ",", Kind: model.KindPunctuation},
		{Page: 1, Character: "teh", Kind: model.KindTypo},
		{Page: 1, Character: "teh", Kind: model.KindTypo},
	}
	ok.AddLog(
		model.PageEntry(0, "The punctuation mark '%s' is incorrect.", ","),
		model.PageEntry(1, "The character '%s' is incorrect.", "teh"),
		model.PageEntry(1, "The character '%s' is incorrect.", "teh"),
	)
	ok.HighlightedPath = "docs/thesis_highlighted.pdf"
	run.Add(ok)

	bad := model.NewDocumentReport("docs/broken.pdf")
	bad.SetError(errors.New("cannot open PDF"))
	run.Add(bad)

	return run
}

// TestSimpleWriter tests the terminal progress writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("prints progress lines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		run := createTestRun()
		doc := run.Documents[0]

		w.DocumentStarted(doc)
		w.IssuesFound(doc)
		w.DocumentFinished(doc)
		w.DocumentFinished(run.Documents[1])

		output := buf.String()
		for _, want := range []string{
			"Processing File: docs/thesis.pdf",
			"Found 3 issues.",
			"Page: 0, Character: ,, Rect: (0.00, 0.00, 0.00, 0.00)",
			"Highlighted PDF saved as: docs/thesis_highlighted.pdf",
			"Failed to process docs/broken.pdf: cannot open PDF",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("issues are listed only when verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewSimpleWriter(&buf).IssuesFound(createTestRun().Documents[0])
		if strings.Contains(buf.String(), "Character:") {
			t.Errorf("expected no issue lines, got:\n%s", buf.String())
		}
	})

	t.Run("writes run summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(createTestRun())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}
		output := buf.String()
		if !strings.Contains(output, "Documents: 2 (failed: 1)") {
			t.Errorf("expected document counts, got:\n%s", output)
		}
		if !strings.Contains(output, "thesis.pdf: punctuation 1, typo 2, indentation 0") {
			t.Errorf("expected per-document counts, got:\n%s", output)
		}
	})
}

// TestMarkdownWriter tests the Markdown writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := NewMarkdownWriter(&buf).Write(createTestRun())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"# Proofreading Report",
		"## Summary",
		"`thesis.pdf`",
		"## thesis.pdf",
		"Page 1: The character 'teh' is incorrect.",
		"## broken.pdf",
		"Nothing to report.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected markdown to contain %q, got:\n%s", want, output)
		}
	}
}

// TestJSONWriter tests the JSON writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := NewJSONWriter(&buf, WithVersion("1.2.3")).Write(createTestRun())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Version     string `json:"version"`
			TotalIssues int    `json:"total_issues"`
			Report      struct {
				Documents []struct {
					Path   string `json:"path"`
					Error  string `json:"error"`
					Issues []struct {
						Kind string `json:"kind"`
					} `json:"issues"`
				} `json:"documents"`
			} `json:"report"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.Version != "1.2.3" {
			t.Errorf("expected version 1.2.3, got %q", decoded.Version)
		}
		if decoded.TotalIssues != 3 {
			t.Errorf("expected 3 issues, got %d", decoded.TotalIssues)
		}
		if len(decoded.Report.Documents) != 2 {
			t.Fatalf("expected 2 documents, got %d", len(decoded.Report.Documents))
		}
		if decoded.Report.Documents[0].Issues[1].Kind != "typo" {
			t.Errorf("expected kind to serialize by name, got %q", decoded.Report.Documents[0].Issues[1].Kind)
		}
		if decoded.Report.Documents[1].Error != "cannot open PDF" {
			t.Errorf("expected error message, got %q", decoded.Report.Documents[1].Error)
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestRun()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"") {
			t.Error("expected indented output")
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("expected trailing newline")
		}
	})
}

// TestMultiWriter tests writing to multiple outputs.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var buf1, buf2 bytes.Buffer
	multi := NewMultiWriter(NewSimpleWriter(&buf1), NewJSONWriter(&buf2))

	n, err := multi.Write(createTestRun())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf1.Len()+buf2.Len() {
		t.Errorf("expected %d total bytes, got %d", buf1.Len()+buf2.Len(), n)
	}
	if buf1.Len() == 0 || buf2.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}

type failingWriter struct {
	err error
}

func (f failingWriter) Write(*model.RunReport) (int, error) {
	return 0, f.err
}

func TestMultiWriterContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first failed")
	errLast := errors.New("last failed")
	var buf bytes.Buffer
	multi := NewMultiWriter(failingWriter{errFirst}, NewSimpleWriter(&buf), failingWriter{errLast})

	n, err := multi.Write(createTestRun())
	if !errors.Is(err, errFirst) || !errors.Is(err, errLast) {
		t.Errorf("expected both errors, got %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected the writer after a failure to receive output")
	}
	if n != buf.Len() {
		t.Errorf("expected %d bytes, got %d", buf.Len(), n)
	}
}
