package git

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/TomJGooding/jagt/internal/models"
)

// showFormat requests: full hash, author date, author name, author email,
// subject, body. The trailing %x00 separates the metadata from the
// shortstat and patch that git appends as free text.
const showFormat = "--format=format:%H%x00%ad%x00%an%x00%ae%x00%s%x00%b%x00"

// showSegmentCount is the six metadata fields plus the trailing
// shortstat/diff segment.
const showSegmentCount = 7

// GetCommitDetails returns the full details of a single commit.
func (s *Source) GetCommitDetails(hash string) (models.CommitDetails, error) {
	output, err := s.runner.Run("show", hash, "--shortstat", "--patch", showFormat)
	if err != nil {
		return models.CommitDetails{}, err
	}

	return parseShow(output)
}

func parseShow(output []byte) (models.CommitDetails, error) {
	segments := strings.SplitN(string(output), fieldSep, showSegmentCount)
	if len(segments) != showSegmentCount {
		return models.CommitDetails{}, fmt.Errorf("%w: show output split into %d segments, want %d",
			ErrMalformedOutput, len(segments), showSegmentCount)
	}
	if strings.Contains(segments[showSegmentCount-1], fieldSep) {
		return models.CommitDetails{}, fmt.Errorf("%w: show output split into more than %d segments",
			ErrMalformedOutput, showSegmentCount)
	}

	shortStat, diff := splitStatAndDiff(segments[6])

	return models.CommitDetails{
		Hash:      segments[0],
		Date:      segments[1],
		Author:    segments[2],
		Email:     segments[3],
		Subject:   segments[4],
		Body:      segments[5],
		ShortStat: shortStat,
		Diff:      diff,
	}, nil
}

// splitStatAndDiff separates the trailing segment into the shortstat line
// and the patch: leading whitespace, then the shortstat, a newline, then
// the diff. Merge and root commits may leave the whole segment empty.
func splitStatAndDiff(trailing string) (shortStat, diff string) {
	trailing = strings.TrimLeftFunc(trailing, unicode.IsSpace)
	if trailing == "" {
		return "", ""
	}

	shortStat, rest, found := strings.Cut(trailing, "\n")
	if !found {
		return shortStat, ""
	}
	return shortStat, strings.TrimSpace(rest)
}
