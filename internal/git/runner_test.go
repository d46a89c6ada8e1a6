package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExternalToolError_Message(t *testing.T) {
	err := &ExternalToolError{
		Subcommand: "log",
		ExitCode:   128,
		Output:     "fatal: not a git repository\n",
	}

	msg := err.Error()
	assert.Contains(t, msg, "git log")
	assert.Contains(t, msg, "128")
	assert.Contains(t, msg, "fatal: not a git repository")
	assert.NotContains(t, msg, "\n")
}

func TestExternalToolError_MessageWithoutOutput(t *testing.T) {
	err := &ExternalToolError{Subcommand: "show", ExitCode: 1}
	assert.Equal(t, "git show exited with code 1", err.Error())
}
