package entity

// ComparisonEvent describes one completed comparison for the stats consumer.
type ComparisonEvent struct {
	EventID    int64
	FileA      string
	FileB      string
	FormatA    FileFormat
	FormatB    FileFormat
	Matched    int
	UnmatchedA int
	UnmatchedB int
	DurationMs int64
}

// ComparisonStats are the aggregate counters kept across comparisons.
// Only totals are retained; individual match results are discarded per
// request.
type ComparisonStats struct {
	Comparisons     int64
	MatchedFields   int64
	UnmatchedFields int64
	FilesByFormat   map[FileFormat]int64
}
