package entity

// Schema is the ordered, deduplicated list of field names inferred from one
// file. An empty Schema is a valid state (empty or field-less input), not an
// error.
type Schema []string

// MatchPair is one matched field, one side per schema. The names are always
// identical strings; both are kept so the pair shape survives a future move
// to non-exact matching.
type MatchPair struct {
	FieldA string
	FieldB string
}

// MatchResult partitions two schemas into matched pairs and the leftover
// fields of each side. Every field of each input schema lands in exactly one
// of the three collections.
type MatchResult struct {
	Matches    []MatchPair
	UnmatchedA []string
	UnmatchedB []string
}
