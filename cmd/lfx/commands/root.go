// Package commands implements the CLI commands for lfx.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/lfx/internal/build"
	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/lfx/internal/core/ports"
	"go.trai.ch/lfx/internal/ui/report"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for lfx.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
	flags   globalFlags
}

type globalFlags struct {
	subspace string
	cwd      string
	json     bool
	logJSON  bool
}

// Application represents the application logic interface.
type Application interface {
	NewSession(cwd, subspace string) (*domain.Session, error)
	Deps(ctx context.Context, session *domain.Session, all bool) ([]domain.ProjectDependencies, error)
	Find(ctx context.Context, session *domain.Session, name string, all bool) ([]domain.DependencyOccurrence, error)
	Normalize(w io.Writer, session *domain.Session, lockfileOverride string) error
	Info(session *domain.Session) (domain.LockfileInfo, error)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lfx",
		Short:         "Explore PNPM lockfiles of Rush and PNPM monorepos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.subspace, "subspace", "s", "", "Load the lockfile for the specified Rush subspace")
	pf.StringVarP(&c.flags.cwd, "cwd", "C", "", "Run as if lfx was started in this directory")
	pf.BoolVar(&c.flags.json, "json", false, "Print reports as JSON")
	pf.BoolVar(&c.flags.logJSON, "log-json", false, "Write diagnostics to stderr as JSON lines")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if s, ok := c.logger.(interface{ SetJSON(bool) }); ok && c.flags.logJSON {
			s.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newFindCmd())
	rootCmd.AddCommand(c.newNormalizeCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) session() (*domain.Session, error) {
	cwd := c.flags.cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		cwd = wd
	}

	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "path", cwd)
	}
	return c.app.NewSession(abs, c.flags.subspace)
}

func (c *CLI) report(cmd *cobra.Command) *report.Renderer {
	return report.New(cmd.OutOrStdout(), c.flags.json)
}
