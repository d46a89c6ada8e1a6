package git

import (
	"fmt"
	"strings"

	"github.com/TomJGooding/jagt/internal/models"
)

// fieldSep joins the pretty-format placeholders. Commit subjects, bodies
// and diffs can contain pipes, commas and newlines, but never a raw NUL
// byte, so NUL is the one delimiter that cannot collide with field text.
const fieldSep = "\x00"

// logFormat requests, per commit: short hash, short author date, author
// name, subject.
const logFormat = "--format=format:%h%x00%as%x00%an%x00%s"

const logFieldCount = 4

// Source produces commit data by invoking git through a Runner.
type Source struct {
	runner Runner
}

func NewSource(runner Runner) *Source {
	return &Source{runner: runner}
}

// InsideRepository reports whether the current working directory is part
// of a git repository. The returned error is the *ExternalToolError from
// the failing rev-parse, if any.
func (s *Source) InsideRepository() error {
	_, err := s.runner.Run("rev-parse", "--git-dir")
	return err
}

// ListCommits returns the commit history, most recent first. A limit of
// zero or less requests the entire history.
func (s *Source) ListCommits(limit int) ([]models.LogEntry, error) {
	args := []string{logFormat}
	if limit > 0 {
		args = append(args, fmt.Sprintf("-%d", limit))
	}

	output, err := s.runner.Run("log", args...)
	if err != nil {
		return nil, err
	}

	return parseLog(output)
}

func parseLog(output []byte) ([]models.LogEntry, error) {
	text := strings.TrimSuffix(string(output), "\n")
	if text == "" {
		return nil, nil
	}

	var entries []models.LogEntry
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(line, fieldSep)
		if len(fields) != logFieldCount {
			return nil, fmt.Errorf("%w: log line split into %d fields, want %d",
				ErrMalformedOutput, len(fields), logFieldCount)
		}

		entries = append(entries, models.LogEntry{
			ShortHash: fields[0],
			Date:      fields[1],
			Author:    fields[2],
			Subject:   fields[3],
		})
	}

	return entries, nil
}
