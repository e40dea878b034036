package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command, an interactive node browser.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [netlist]",
		Short: "Browse placed nodes interactively",
		Long: `Browse placed nodes interactively.

The inspect command solves the netlist and opens a terminal browser listing
every terminal with its coordinates and the elements attached to it.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeInputFile(netlistExtensions...),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, source, err := readInput(cmd, args[0])
			if err != nil {
				return fmt.Errorf("read netlist: %w", err)
			}
			opts := c.pipelineOptions()
			opts.Source = source
			opts.Netlist = data

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			result, err := c.solve(ctx, runner, opts, nil)
			if err != nil {
				return err
			}

			model := NewNodeListModel(result.Placement, result.Netlist)
			_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
			return err
		},
	}
}
