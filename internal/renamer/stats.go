package renamer

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int // Entries considered (paths plus discovered tree entries).
	Renamed   int // Renames performed (or would-be renames under dry-run).
	Skipped   int // No-clobber collisions left in place.
	Unchanged int // Entries whose destination equals their source.
	Failed    int // Conversion or rename failures.
}
