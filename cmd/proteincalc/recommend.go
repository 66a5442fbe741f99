package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"lg/protein-calc-go-api/internal/protein"
)

// NewRecommendCmd creates the recommend command, which classifies an intake
// given in grams per kilogram of body weight.
func NewRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "recommend <grams-per-kg>",
		Short:   "Classify a protein intake in g/kg",
		Example: `  proteincalc recommend 1.6`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perKg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			rec := protein.GetProteinRecommendation(perKg)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			printer.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rec.Level, rec.Message)
			return nil
		},
	}
}
