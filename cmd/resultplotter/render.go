package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/ResultPlotter/src/plotter"
	"github.com/iafilius/ResultPlotter/src/scenarios"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	s := scenarios.Scenario{Name: "render", Kind: scenarios.KindChart}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one chart from a results file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := scenarios.Render(s, opts.renderConfig())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&s.Source, "source", "", "Results file (CSV or XLSX)")
	f.StringVar(&s.Output, "output", "", "Output image path; extension optional")
	f.StringVar(&s.Label.Kind, "label-kind", scenarios.LabelInt, "Label strategy (int|scaled|text|option)")
	f.StringVar(&s.Label.Column, "label-column", "k", "Column holding the experiment variable")
	f.Float64Var(&s.Label.Factor, "factor", 1, "Multiplier for --label-kind=scaled")
	f.StringVar(&s.XLabel, "xlabel", "", "X axis name")
	f.Float64Var(&s.YRange.Min, "ymin", plotter.DefaultYRange.Min, "Y axis minimum")
	f.Float64Var(&s.YRange.Max, "ymax", plotter.DefaultYRange.Max, "Y axis maximum")
	f.Float64SliceVar(&s.Lines, "lines", nil, "Reference values, one per metric (accuracy,sensitivity,precision,F1)")
	f.StringVar(&s.Caption, "caption", "", "Caption drawn under the chart (PNG only)")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newBreakdownCmd(opts *rootOptions) *cobra.Command {
	s := scenarios.Scenario{
		Name:  "breakdown",
		Kind:  scenarios.KindBreakdown,
		Label: scenarios.LabelSpec{Kind: scenarios.LabelOption, Column: "feature"},
	}
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Render one country's sensitivity, precision and F1 over disabled features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := scenarios.Render(s, opts.renderConfig())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&s.Source, "source", "", "Feature-exclusion results file")
	f.StringVar(&s.Output, "output-base", "", "Output base path; \"_<country>\" is appended")
	f.StringVar(&s.Country, "country", "", "Country identifier, e.g. west_germany")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("output-base")
	_ = cmd.MarkFlagRequired("country")
	return cmd
}
