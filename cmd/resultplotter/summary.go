package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iafilius/ResultPlotter/src/scenarios"
	"github.com/iafilius/ResultPlotter/src/summary"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var label scenarios.LabelSpec
	cmd := &cobra.Command{
		Use:   "summary [results-file]",
		Short: "Print per-metric mean, spread and best row for each scenario or one file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []scenarios.Scenario
			if len(args) == 1 {
				list = []scenarios.Scenario{{Name: args[0], Source: args[0], Output: "-", Label: label}}
			} else {
				var err error
				if list, err = opts.scenarioList(); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			for i, s := range list {
				series, err := scenarios.Series(s, nil)
				if err != nil {
					return err
				}
				sum, err := summary.Summarize(series)
				if err != nil {
					return errors.Wrapf(err, "summary %s", s.Name)
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				summary.WriteTable(w, s.Name, sum)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&label.Kind, "label-kind", scenarios.LabelText, "Label strategy for a single file (int|scaled|text|option)")
	f.StringVar(&label.Column, "label-column", "k", "Column holding the experiment variable for a single file")
	f.Float64Var(&label.Factor, "factor", 1, "Multiplier for --label-kind=scaled")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the scenarios that a plain run renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.scenarioList()
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Kind", "Source", "Output", "Y range", "Ref lines"})
			table.SetAutoWrapText(false)
			for _, s := range list {
				kind := s.Kind
				if kind == "" {
					kind = scenarios.KindChart
				}
				out := s.Output
				if kind == scenarios.KindBreakdown {
					out += "_" + s.Country
				}
				table.Append([]string{
					s.Name,
					kind,
					s.Source,
					out,
					fmt.Sprintf("%.2f-%.2f", s.YRange.Min, s.YRange.Max),
					fmt.Sprintf("%d", len(s.Lines)),
				})
			}
			table.Render()
			return nil
		},
	}
}
