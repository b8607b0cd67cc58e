// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleaner

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/archclean/pkg/types"
)

// ClassRemoval records one class body replaced by a placeholder.
type ClassRemoval struct {
	Class        string `json:"class" yaml:"class"`
	Line         int    `json:"line" yaml:"line"`
	LinesRemoved int    `json:"lines_removed" yaml:"lines_removed"`
}

// FenceRemoval records one collapsed code fence.
type FenceRemoval struct {
	Line      int `json:"line" yaml:"line"`
	BodyLines int `json:"body_lines" yaml:"body_lines"`
}

// Report summarizes one cleaning run: line totals plus every removed span.
type Report struct {
	Target         string         `json:"target" yaml:"target"`
	OriginalLines  int            `json:"original_lines" yaml:"original_lines"`
	CleanedLines   int            `json:"cleaned_lines" yaml:"cleaned_lines"`
	RemovedLines   int            `json:"removed_lines" yaml:"removed_lines"`
	RemovedPercent float64        `json:"removed_percent" yaml:"removed_percent"`
	Classes        []ClassRemoval `json:"classes,omitempty" yaml:"classes,omitempty"`
	Fences         []FenceRemoval `json:"fences,omitempty" yaml:"fences,omitempty"`
}

// WriteReport writes the report to path in the given format.
func WriteReport(r Report, path string, format types.ReportFormat) error {
	var data []byte
	var err error
	switch format {
	case types.ReportJSON:
		data, err = json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
	case types.ReportYAML, "":
		data, err = yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	return os.WriteFile(path, data, 0o644)
}
