package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const gitExecutable = "git"

// Runner executes a git subcommand and returns its combined stdout and
// stderr. Implementations report a non-zero exit as *ExternalToolError so
// callers can surface the tool's own exit code.
type Runner interface {
	Run(subcommand string, args ...string) ([]byte, error)
}

// ExternalToolError reports a git invocation that exited non-zero, e.g.
// when the working directory is not a repository or git is missing.
type ExternalToolError struct {
	Subcommand string
	ExitCode   int
	Output     string
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("git %s exited with code %d", e.Subcommand, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// ErrMalformedOutput signals that git produced output that does not match
// the expected field-delimited format. This is an internal-consistency
// defect rather than a tool failure and is never folded into
// ExternalToolError.
var ErrMalformedOutput = errors.New("malformed git output")

type execRunner struct{}

// NewRunner returns a Runner that shells out to the git binary in the
// current working directory.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(subcommand string, args ...string) ([]byte, error) {
	cmd := exec.Command(gitExecutable, append([]string{subcommand}, args...)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return nil, &ExternalToolError{
			Subcommand: subcommand,
			ExitCode:   code,
			Output:     string(output),
		}
	}
	return output, nil
}
