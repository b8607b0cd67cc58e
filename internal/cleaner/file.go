// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleaner

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Output file suffixes. The original document is never touched in place.
const (
	BackupSuffix  = ".backup"
	CleanedSuffix = ".cleaned"
)

// CleanFile reads the document at path, writes a byte-identical backup,
// runs the filter, writes the cleaned copy, and prints a line-count summary
// to w. With dryRun set, nothing is written and the summary notes it.
//
// The backup is written before the filter runs, so a failure mid-clean
// never leaves the original without a copy. A read or write failure is
// returned as-is; there is no cleanup of partially written output.
func CleanFile(c *Cleaner, path string, dryRun bool, w io.Writer) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	backupPath := path + BackupSuffix
	cleanedPath := path + CleanedSuffix

	if !dryRun {
		if err := os.WriteFile(backupPath, data, 0o644); err != nil {
			return Report{}, fmt.Errorf("writing backup %s: %w", backupPath, err)
		}
	}

	cleaned, report := c.Clean(content)

	if !dryRun {
		if err := os.WriteFile(cleanedPath, []byte(cleaned), 0o644); err != nil {
			return Report{}, fmt.Errorf("writing cleaned copy %s: %w", cleanedPath, err)
		}
	}

	report.Target = path
	report.OriginalLines = countLines(content)
	report.CleanedLines = countLines(cleaned)
	report.RemovedLines = report.OriginalLines - report.CleanedLines
	if report.OriginalLines > 0 {
		report.RemovedPercent = 100 * float64(report.RemovedLines) / float64(report.OriginalLines)
	}

	fmt.Fprintf(w, "Original: %d lines\n", report.OriginalLines)
	fmt.Fprintf(w, "Cleaned: %d lines\n", report.CleanedLines)
	fmt.Fprintf(w, "Removed: %d lines (%.1f%%)\n", report.RemovedLines, report.RemovedPercent)
	if dryRun {
		fmt.Fprintln(w, "Dry run: no files written")
		return report, nil
	}
	fmt.Fprintf(w, "Backup saved to: %s\n", backupPath)
	fmt.Fprintf(w, "Cleaned version saved to: %s\n", cleanedPath)
	return report, nil
}

// countLines counts newline-separated segments; a trailing newline adds
// a segment.
func countLines(s string) int {
	return strings.Count(s, "\n") + 1
}
