// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cleaner strips implementation-level code fragments from a markdown
// architecture document: bodies of known classes, and fenced code blocks
// whose content matches implementation-signal patterns. Everything else
// passes through verbatim.
package cleaner

import (
	"fmt"
	"strings"
)

// Placeholder formats for removed spans.
const (
	classRemovedFormat      = "// %s: [Implementation details removed - see source code]\n"
	fenceRemovedPlaceholder = "// [Implementation code removed - focus on architecture]\n"
)

// scanState tracks where the scan cursor is relative to code fences.
type scanState int

const (
	stateNormal scanState = iota
	stateInFence
)

// Cleaner is the line filter. It is stateless between Clean calls; the
// rules are fixed at construction.
type Cleaner struct {
	rules Rules
}

// New returns a Cleaner using the given rules.
func New(rules Rules) *Cleaner {
	return &Cleaner{rules: rules}
}

// Clean runs one left-to-right pass over content and returns the cleaned
// text plus a report of every removed span. Line endings of untouched
// lines are preserved exactly.
//
// Two rules compose in a single scan:
//
//  1. A line declaring a tracked class is replaced by one placeholder and
//     its body is consumed by brace-depth counting. The cursor resumes
//     after the consumed span, so removed spans never overlap fence
//     handling. A declaration without an opening brace consumes no body;
//     the placeholder still replaces the declaration line. Unbalanced
//     braces consume through end of input.
//
//  2. A fence opened with a recognized flavor tag is buffered; at the
//     closing marker the body is tested against the pattern sequence.
//     A flagged body longer than the threshold collapses the whole fence,
//     markers included, into one placeholder. Anything else is kept
//     verbatim.
func (c *Cleaner) Clean(content string) (string, Report) {
	lines := splitAfterLines(content)
	var out []string
	var report Report

	state := stateNormal
	fenceStart := -1 // index in out of the opening marker
	fenceLine := 0   // 1-based input line of the opening marker

	i := 0
	for i < len(lines) {
		line := lines[i]

		// Class removal runs first on every line, fences included.
		if name, ok := c.matchClass(line); ok {
			out = append(out, fmt.Sprintf(classRemovedFormat, name))
			declLine := i + 1
			i++
			depth := 0
			if strings.Contains(line, "{") {
				depth = 1
			}
			consumed := 0
			for i < len(lines) && depth > 0 {
				depth += strings.Count(lines[i], "{")
				depth -= strings.Count(lines[i], "}")
				i++
				consumed++
			}
			report.Classes = append(report.Classes, ClassRemoval{
				Class:        name,
				Line:         declLine,
				LinesRemoved: consumed + 1,
			})
			continue
		}

		if c.fenceOpen(line) {
			state = stateInFence
			fenceStart = len(out)
			fenceLine = i + 1
			out = append(out, line)
			i++
			continue
		}

		if state == stateInFence && strings.Contains(line, "```") {
			state = stateNormal
			body := strings.Join(out[fenceStart+1:], "")
			bodyLines := len(out) - fenceStart - 1
			if c.isImplementation(body) && bodyLines > c.rules.FenceBodyLimit {
				out = out[:fenceStart]
				out = append(out, fenceRemovedPlaceholder)
				report.Fences = append(report.Fences, FenceRemoval{
					Line:      fenceLine,
					BodyLines: bodyLines,
				})
			} else {
				out = append(out, line)
			}
			i++
			continue
		}

		out = append(out, line)
		i++
	}

	return strings.Join(out, ""), report
}

// matchClass returns the first tracked class declared on line, in
// declaration order.
func (c *Cleaner) matchClass(line string) (string, bool) {
	for _, cls := range c.rules.Classes {
		if strings.Contains(line, "public class "+cls) {
			return cls, true
		}
	}
	return "", false
}

// fenceOpen reports whether line opens a fence with a recognized flavor.
func (c *Cleaner) fenceOpen(line string) bool {
	for _, tag := range c.rules.FenceFlavors {
		if strings.Contains(line, tag) {
			return true
		}
	}
	return false
}

// isImplementation tests the fence body blob against the pattern sequence.
func (c *Cleaner) isImplementation(body string) bool {
	for _, p := range c.rules.Patterns {
		if p.MatchString(body) {
			return true
		}
	}
	return false
}

// splitAfterLines splits content into lines that keep their trailing
// newline, so joining the result reproduces the input byte for byte.
func splitAfterLines(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
