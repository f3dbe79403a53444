package library

// Stats counts what a pipeline run did.
type Stats struct {
	// Albums is the number of albums visited.
	Albums int

	// Tagged counts files whose tags were written.
	Tagged int

	// Renamed counts files moved to their canonical name.
	Renamed int

	// Skipped counts MP3 files that are not named "<track>. <title>.mp3"
	// and were left alone by the tag pipeline.
	Skipped int

	// AlreadyCanonical counts files excluded from renaming because they
	// already carry a two-digit prefix.
	AlreadyCanonical int

	// Warnings counts unmatched tracklist titles and name collisions.
	Warnings int

	// Failed counts per-file tag or rename failures.
	Failed int
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Albums += other.Albums
	s.Tagged += other.Tagged
	s.Renamed += other.Renamed
	s.Skipped += other.Skipped
	s.AlreadyCanonical += other.AlreadyCanonical
	s.Warnings += other.Warnings
	s.Failed += other.Failed
}

// HasProblems reports whether any warning or failure was recorded.
func (s Stats) HasProblems() bool {
	return s.Warnings > 0 || s.Failed > 0
}
