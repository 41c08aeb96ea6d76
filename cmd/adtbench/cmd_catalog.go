package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
	"github.com/randomizedcoder/adt-complexity-bench/internal/report"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Query the theoretical complexity catalog",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "table [structure]",
			Short: "Print the complexity table of one or every structure",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				if len(args) == 0 {
					return report.AllComplexity(out, a.catalog, a.reportOptions(out))
				}
				return report.Complexity(out, a.catalog, args[0], a.reportOptions(out))
			},
		},
		&cobra.Command{
			Use:   "compare <operation>",
			Short: "Compare one operation across structures (insert, delete, search or a name)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				return report.Comparison(out, a.catalog, args[0], a.reportOptions(out))
			},
		},
		&cobra.Command{
			Use:   "predict <structure> <n> <operation>",
			Short: "Estimate operation counts for an input size",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 0 {
					return fmt.Errorf("input size must be a non-negative integer, got %q", args[1])
				}
				p, err := a.catalog.Predict(args[0], n, args[2])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				return report.Prediction(out, p, a.reportOptions(out))
			},
		},
		&cobra.Command{
			Use:   "explain <structure> <operation>",
			Short: "Explain the complexity of one operation",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := a.catalog.Get(args[0], args[1])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				return report.Explain(out, r, a.reportOptions(out))
			},
		},
		&cobra.Command{
			Use:   "recommend <use case>",
			Short: "Suggest a structure for a use case",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				useCase := strings.Join(args, " ")
				out := cmd.OutOrStdout()
				return report.Recommendations(out, useCase, complexity.Recommend(useCase), a.reportOptions(out))
			},
		},
	)
	return cmd
}
