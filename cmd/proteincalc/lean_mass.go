package main

import (
	"github.com/spf13/cobra"

	"lg/protein-calc-go-api/internal/protein"
	"lg/protein-calc-go-api/internal/units"
)

type leanMassOutput struct {
	LeanMassKg   float64 `json:"lean_mass_kg"`
	ProteinGrams float64 `json:"protein_grams"`
}

// NewLeanMassCmd creates the lean-mass command, which sizes protein intake
// from lean body mass instead of total weight.
func NewLeanMassCmd() *cobra.Command {
	var (
		weight     float64
		weightUnit string
		bodyFat    float64
		rate       float64
	)

	cmd := &cobra.Command{
		Use:     "lean-mass",
		Short:   "Calculate protein from lean body mass",
		Example: `  proteincalc lean-mass --weight 80 --body-fat 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weightKg, err := units.WeightToKg(weight, units.WeightUnit(weightUnit))
			if err != nil {
				return err
			}
			grams, err := protein.CalculateProteinFromLeanMass(weightKg, bodyFat, rate)
			if err != nil {
				return err
			}
			out := leanMassOutput{LeanMassKg: protein.LeanMass(weightKg, bodyFat), ProteinGrams: grams}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printer.Fprintf(cmd.OutOrStdout(), "Lean mass: %.1f kg\nProtein:   %.0f g/day\n", out.LeanMassKg, out.ProteinGrams)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&weight, "weight", 0, "Body weight")
	f.StringVar(&weightUnit, "weight-unit", string(units.Kilograms), "Weight unit (kg, lb)")
	f.Float64Var(&bodyFat, "body-fat", 0, "Body fat percentage (0-70)")
	f.Float64Var(&rate, "per-kg-lean", protein.DefaultLeanMassPerKg, "Grams of protein per kg of lean mass")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("body-fat")

	return cmd
}
