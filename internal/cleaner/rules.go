// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleaner

import "regexp"

// Implementation-signal patterns, tested against a fence body as one blob.
// Order matters only for short-circuiting; any match flags the body.
var implPatterns = []*regexp.Regexp{
	// C# field declarations.
	regexp.MustCompile(`(?m)^\s*private readonly`),
	// Async method bodies.
	regexp.MustCompile(`(?m)^\s*public async Task`),
	// Test fixture classes.
	regexp.MustCompile(`(?m)^\s*public class.*Tests`),
	// xUnit attributes and assertions.
	regexp.MustCompile(`(?m)^\s*\[Fact\]`),
	regexp.MustCompile(`(?m)^\s*\[Theory\]`),
	regexp.MustCompile(`(?m)^\s*Assert\.`),
	// Local construction and call sites.
	regexp.MustCompile(`(?m)^\s*var .* = new`),
	regexp.MustCompile(`(?m)^\s*_logger\.Log`),
	regexp.MustCompile(`(?m)^\s*await _.*\.`),
	regexp.MustCompile(`(?m)^\s*using var`),
	// Exception-handling scaffolding.
	regexp.MustCompile(`(?m)^\s*try\s*\{`),
	regexp.MustCompile(`(?m)^\s*catch\s*\(`),
	regexp.MustCompile(`(?m)^\s*throw new`),
}

// removeClasses lists the classes whose bodies are stripped wholesale from
// the document. Membership test only; declaration order decides which name
// wins when more than one matches a line.
var removeClasses = []string{
	"CASStorage", "DocumentProcessingService", "ReceiptMapper", "W4Mapper",
	"MapperInitializer", "OcrService", "CachedOcrService", "OcrServiceErrorHandler",
	"OfflineScanManager", "OcrProcessingErrorHandler", "CircuitBreakerOcrProxy",
	"OcrProcessingStateManager", "CameraServiceTests", "OCRServiceIntegrationTests",
	"Form1040Mapper", "RetryPolicyConfiguration", "ProcessingEntry", "CASStateRecovery",
	"PerformanceMonitor", "OCRResultCache",
}

// fenceFlavors lists the fence language tags recognized as code blocks.
// "```cs" also matches "```csharp" as a substring; both are kept so the
// accepted set stays explicit.
var fenceFlavors = []string{"```csharp", "```cs"}

// defaultFenceBodyLimit is the body-line count a flagged fence must exceed
// before it is collapsed.
const defaultFenceBodyLimit = 20

// Rules holds the immutable classification values for one Cleaner.
// The class and pattern lists are fixed; callers may tune the fence
// body limit.
type Rules struct {
	// Classes are matched against each line as "public class <name>".
	Classes []string

	// Patterns flag a fence body as implementation code when any matches.
	Patterns []*regexp.Regexp

	// FenceFlavors are the fence-open markers recognized as code blocks.
	FenceFlavors []string

	// FenceBodyLimit is the body-line threshold for collapsing a flagged fence.
	FenceBodyLimit int
}

// DefaultRules returns the built-in class set, pattern sequence, fence
// flavors, and threshold.
func DefaultRules() Rules {
	return Rules{
		Classes:        removeClasses,
		Patterns:       implPatterns,
		FenceFlavors:   fenceFlavors,
		FenceBodyLimit: defaultFenceBodyLimit,
	}
}
