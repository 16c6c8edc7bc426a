package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/epi-tools/covid-atlas/pkg/runtime/terminal/commands"
	"github.com/epi-tools/covid-atlas/pkg/runtime/terminal/export"
	"github.com/epi-tools/covid-atlas/pkg/services/source"
)

// CLI represents the command-line interface
type CLI struct {
	registry source.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry source.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covid-atlas",
		Short: "COVID-19 data exploration tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewContinentsCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewCountriesCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewImportCmd(cli.registry, cli.reporter))

	return cmd
}
