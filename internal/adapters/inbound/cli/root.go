package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	logLevel string
}

// logger builds the stderr logger for cmd at the configured level.
func (o *globalOptions) logger(cmd *cobra.Command) (*log.Logger, error) {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "projectinfo",
		Level:  level,
	}), nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "projectinfo",
		Short:         "Project information reports for Maven builds",
		Long:          "projectinfo renders the project-info reports of a Maven build, starting with the table of declared modules.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newModulesCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
