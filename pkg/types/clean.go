// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and report types shared between the
// CLI surface and the cleaning engine.
package types

// ReportFormat selects the removal-report output format.
type ReportFormat string

const (
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// CleanConfig holds settings for one cleaning run.
type CleanConfig struct {
	// Target is the path of the markdown document to clean.
	Target string `json:"target" yaml:"target"`

	// DryRun runs the filter and prints the summary without writing any file.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// ReportPath is an optional path for a machine-readable removal report.
	// Empty means no report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// ReportFormat selects the report encoding: yaml or json (default yaml).
	ReportFormat ReportFormat `json:"report_format" yaml:"report_format"`

	// FenceBodyLimit is the number of body lines a flagged code fence must
	// exceed before it is collapsed (default 20).
	FenceBodyLimit int `json:"fence_body_limit" yaml:"fence_body_limit"`
}
