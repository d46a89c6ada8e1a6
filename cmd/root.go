package cmd

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TomJGooding/jagt/internal/config"
	"github.com/TomJGooding/jagt/internal/git"
	"github.com/TomJGooding/jagt/internal/ui"
)

var (
	logLimit  int
	themeName string
)

var rootCmd = &cobra.Command{
	Use:   "jagt",
	Short: "Just another git log TUI",
	Long: `jagt browses the current repository's commit history: a scrollable
log pane next to a detail pane showing the commit metadata, message,
shortstat and diff.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("limit") {
			cfg.LogLimit = logLimit
		}
		if cmd.Flags().Changed("theme") {
			cfg.SetTheme(themeName)
		}

		source := git.NewSource(git.NewRunner())

		// Fail before entering the alt screen when not in a repository.
		if err := source.InsideRepository(); err != nil {
			return err
		}

		p := tea.NewProgram(ui.NewModel(source, cfg), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		if m, ok := finalModel.(ui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&logLimit, "limit", "n", 0, "Maximum number of commits to load (0 = all)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme: default, dracula or solarized")
}

// Execute runs the root command. A git failure exits with the tool's own
// exit code; any other error exits with 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a fatal error to the process exit status: a git failure
// surfaces the tool's own exit code, anything else exits with 1.
func exitCode(err error) int {
	var toolErr *git.ExternalToolError
	if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}
