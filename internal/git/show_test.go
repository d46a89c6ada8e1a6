package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomJGooding/jagt/internal/models"
)

// encodeShow builds the wire payload git show produces for our format:
// six NUL-joined metadata fields, a NUL, then the free-text shortstat
// and patch.
func encodeShow(d models.CommitDetails) []byte {
	fields := strings.Join([]string{d.Hash, d.Date, d.Author, d.Email, d.Subject, d.Body}, "\x00")

	trailing := ""
	if d.ShortStat != "" || d.Diff != "" {
		trailing = "\n " + d.ShortStat + "\n\n" + d.Diff + "\n"
	}

	return []byte(fields + "\x00" + trailing)
}

func TestGetCommitDetails_Decodes(t *testing.T) {
	runner := &stubRunner{
		output: []byte("a1b2c3d4e5\x00Mon Jan 1 12:00:00 2024 +0100\x00Alice\x00alice@example.com\x00" +
			"Fix bug | with, pipes\x00Longer explanation.\n\nSecond paragraph.\n\x00" +
			"\n 2 files changed, 10 insertions(+), 3 deletions(-)\n\n" +
			"diff --git a/a.go b/a.go\n@@ -1 +1 @@\n-old\n+new\n"),
	}

	details, err := NewSource(runner).GetCommitDetails("a1b2c3d4e5")
	require.NoError(t, err)

	assert.Equal(t, "a1b2c3d4e5", details.Hash)
	assert.Equal(t, "Mon Jan 1 12:00:00 2024 +0100", details.Date)
	assert.Equal(t, "Alice", details.Author)
	assert.Equal(t, "alice@example.com", details.Email)
	assert.Equal(t, "Fix bug | with, pipes", details.Subject)
	assert.Equal(t, "Longer explanation.\n\nSecond paragraph.\n", details.Body)
	assert.Equal(t, "2 files changed, 10 insertions(+), 3 deletions(-)", details.ShortStat)
	assert.Equal(t, "diff --git a/a.go b/a.go\n@@ -1 +1 @@\n-old\n+new", details.Diff)

	assert.Equal(t, "show", runner.subcommand)
	assert.Equal(t, []string{"a1b2c3d4e5", "--shortstat", "--patch", showFormat}, runner.args)
}

func TestGetCommitDetails_RoundTrip(t *testing.T) {
	want := models.CommitDetails{
		Hash:      "0123456789abcdef0123456789abcdef01234567",
		Date:      "Tue Feb 13 08:15:00 2024 +0900",
		Author:    "Grüße 世界",
		Email:     "dev@example.jp",
		Subject:   "Handle tabs\tand unicode — naïve case",
		Body:      "Line one.\n\tIndented line.\n„Quoted“ text with 日本語.\n",
		ShortStat: "1 file changed, 1 insertion(+)",
		Diff:      "diff --git a/f b/f\n@@ -0,0 +1 @@\n+added\ttab and ünïcode\n",
	}

	got, err := parseShow(encodeShow(want))
	require.NoError(t, err)

	// encodeShow appends a trailing newline the way git does; the parser
	// trims it from the decoded diff.
	want.Diff = strings.TrimSpace(want.Diff)
	assert.Equal(t, want, got)
}

func TestGetCommitDetails_EmptyCommit(t *testing.T) {
	// A merge or root commit can yield no shortstat and no diff at all.
	details, err := parseShow(encodeShow(models.CommitDetails{
		Hash:    "deadbeef",
		Date:    "Mon Jan 1 2024",
		Author:  "Alice",
		Email:   "alice@example.com",
		Subject: "Merge branch 'feature'",
	}))
	require.NoError(t, err)

	assert.Equal(t, "", details.Body)
	assert.Equal(t, "", details.ShortStat)
	assert.Equal(t, "", details.Diff)
}

func TestGetCommitDetails_StatWithoutDiff(t *testing.T) {
	details, err := parseShow([]byte("h\x00d\x00a\x00e\x00s\x00b\x00\n 1 file changed, 1 deletion(-)\n"))
	require.NoError(t, err)

	assert.Equal(t, "1 file changed, 1 deletion(-)", details.ShortStat)
	assert.Equal(t, "", details.Diff)
}

func TestGetCommitDetails_MalformedSegments(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"too few segments", "hash\x00date\x00name\x00email\x00subject"},
		{"too many segments", "h\x00d\x00a\x00e\x00s\x00b\x00stat\x00stray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseShow([]byte(tt.output))
			require.ErrorIs(t, err, ErrMalformedOutput)
		})
	}
}

func TestGetCommitDetails_ToolFailure(t *testing.T) {
	injected := &ExternalToolError{
		Subcommand: "show",
		ExitCode:   129,
		Output:     "fatal: bad revision 'nope'",
	}

	_, err := NewSource(&stubRunner{err: injected}).GetCommitDetails("nope")

	var toolErr *ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "show", toolErr.Subcommand)
	assert.Equal(t, 129, toolErr.ExitCode)
	assert.Equal(t, "fatal: bad revision 'nope'", toolErr.Output)
}
