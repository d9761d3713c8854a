// Package display holds output formatting helpers shared by the renamer and
// watch loops.
package display

import "fmt"

// FormatMapping renders a source-to-destination rename line in the
// single-quoted arrow form used by verbose and dry-run output.
func FormatMapping(source, destination string) string {
	return fmt.Sprintf("'%s' -> '%s'", source, destination)
}

// FormatSkip renders the line reported when a no-clobber collision is
// skipped.
func FormatSkip(destination string) string {
	return fmt.Sprintf("skip (destination exists): '%s'", destination)
}

// FormatSummary renders the end-of-batch counter line.
func FormatSummary(renamed, skipped, unchanged, failed int) string {
	return fmt.Sprintf("Done: %d renamed, %d skipped, %d unchanged, %d failed",
		renamed, skipped, unchanged, failed)
}
