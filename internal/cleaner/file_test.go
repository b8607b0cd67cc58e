// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleaner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupDoc writes a markdown document into a temp dir and returns its path.
func setupDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "architecture.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCleanFile(t *testing.T) {
	content := "# Heading\n" +
		"public class OcrService {\n" +
		"  private int x;\n" +
		"}\n" +
		"after\n"

	path := setupDoc(t, content)
	var buf bytes.Buffer

	report, err := CleanFile(New(DefaultRules()), path, false, &buf)
	if err != nil {
		t.Fatalf("CleanFile: %v", err)
	}

	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(backup) != content {
		t.Errorf("backup not byte-identical to input")
	}

	cleaned, err := os.ReadFile(path + CleanedSuffix)
	if err != nil {
		t.Fatalf("reading cleaned copy: %v", err)
	}
	wantCleaned := "# Heading\n" +
		"// OcrService: [Implementation details removed - see source code]\n" +
		"after\n"
	if string(cleaned) != wantCleaned {
		t.Errorf("cleaned copy = %q, want %q", cleaned, wantCleaned)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading original: %v", err)
	}
	if string(original) != content {
		t.Errorf("original file was modified")
	}

	// 6 newline-split segments in, 4 out.
	wantSummary := "Original: 6 lines\n" +
		"Cleaned: 4 lines\n" +
		"Removed: 2 lines (33.3%)\n" +
		"Backup saved to: " + path + BackupSuffix + "\n" +
		"Cleaned version saved to: " + path + CleanedSuffix + "\n"
	if buf.String() != wantSummary {
		t.Errorf("summary = %q, want %q", buf.String(), wantSummary)
	}

	if report.OriginalLines != 6 || report.CleanedLines != 4 || report.RemovedLines != 2 {
		t.Errorf("report totals = %+v, want 6/4/2", report)
	}
	if report.Target != path {
		t.Errorf("report.Target = %q, want %q", report.Target, path)
	}
}

func TestCleanFile_DryRun(t *testing.T) {
	content := "# Heading\nprose\n"
	path := setupDoc(t, content)
	var buf bytes.Buffer

	_, err := CleanFile(New(DefaultRules()), path, true, &buf)
	if err != nil {
		t.Fatalf("CleanFile: %v", err)
	}

	if _, err := os.Stat(path + BackupSuffix); !os.IsNotExist(err) {
		t.Errorf("dry run wrote a backup")
	}
	if _, err := os.Stat(path + CleanedSuffix); !os.IsNotExist(err) {
		t.Errorf("dry run wrote a cleaned copy")
	}
	if !strings.Contains(buf.String(), "Dry run: no files written") {
		t.Errorf("summary missing dry-run note: %q", buf.String())
	}
}

func TestCleanFile_MissingInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.md")
	var buf bytes.Buffer

	_, err := CleanFile(New(DefaultRules()), path, false, &buf)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error does not surface the underlying I/O failure: %v", err)
	}
}

func TestCleanFile_SummaryArithmetic(t *testing.T) {
	// 200 input segments, 50 removed by a collapsing fence: 25.0%.
	var sb strings.Builder
	sb.WriteString("```csharp\n")
	for i := 0; i < 49; i++ {
		sb.WriteString("    throw new Exception();\n")
	}
	sb.WriteString("```\n")
	for i := 0; i < 148; i++ {
		sb.WriteString("prose\n")
	}
	content := sb.String()
	if got := countLines(content); got != 200 {
		t.Fatalf("test input has %d segments, want 200", got)
	}

	path := setupDoc(t, content)
	var buf bytes.Buffer
	if _, err := CleanFile(New(DefaultRules()), path, false, &buf); err != nil {
		t.Fatalf("CleanFile: %v", err)
	}

	if !strings.Contains(buf.String(), "Removed: 50 lines (25.0%)\n") {
		t.Errorf("summary = %q, want removal of 50 lines at 25.0%%", buf.String())
	}
}
