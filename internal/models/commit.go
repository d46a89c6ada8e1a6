package models

// LogEntry is a single line of the commit log, produced in bulk by one
// history listing at startup. Entries are immutable and kept in the
// order git emits them, most recent first.
type LogEntry struct {
	ShortHash string
	Date      string
	Author    string
	Subject   string
}

// CommitDetails holds everything displayed for one selected commit.
// Details are fetched on demand per selection and never cached, so the
// panes always reflect the current state of the repository.
type CommitDetails struct {
	Hash      string
	Date      string
	Author    string
	Email     string
	Subject   string
	Body      string
	ShortStat string
	Diff      string
}

// TruncatedDiff returns a copy of the diff cut to at most limit
// characters for display. The stored diff is left untouched.
// A limit of zero or less disables truncation.
func (c CommitDetails) TruncatedDiff(limit int) string {
	if limit <= 0 {
		return c.Diff
	}
	runes := []rune(c.Diff)
	if len(runes) <= limit {
		return c.Diff
	}
	return string(runes[:limit])
}
