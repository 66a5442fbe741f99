package main

import (
	"github.com/spf13/cobra"

	"lg/protein-calc-go-api/internal/protein"
	"lg/protein-calc-go-api/internal/units"
)

// NewDailyCmd creates the daily command, which runs the full calculation.
func NewDailyCmd() *cobra.Command {
	var (
		values     protein.FormValues
		gender     string
		weightUnit string
		heightUnit string
		activity   string
		goal       string
	)

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Calculate daily protein needs from body stats",
		Example: `  proteincalc daily --weight 70 --age 30
  proteincalc daily --weight 180 --weight-unit lb --activity-level very_active --goal muscle_gain
  proteincalc daily --weight 80 --age 45 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values.Gender = protein.Gender(gender)
			values.WeightUnit = units.WeightUnit(weightUnit)
			values.HeightUnit = units.HeightUnit(heightUnit)
			values.ActivityLevel = protein.ActivityLevel(activity)
			values.Goal = protein.Goal(goal)

			result, err := protein.ProcessProteinCalculation(&values)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printResult(cmd, result)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&gender, "gender", string(protein.Male), "Gender (male, female)")
	f.IntVar(&values.Age, "age", 30, "Age in years")
	f.Float64Var(&values.Weight, "weight", 0, "Body weight")
	f.StringVar(&weightUnit, "weight-unit", string(units.Kilograms), "Weight unit (kg, lb)")
	f.Float64Var(&values.HeightCm, "height-cm", 0, "Height in centimeters")
	f.Float64Var(&values.HeightFeet, "height-feet", 0, "Height feet (with --height-unit ft_in)")
	f.Float64Var(&values.HeightInches, "height-inches", 0, "Height inches (with --height-unit ft_in)")
	f.StringVar(&heightUnit, "height-unit", string(units.Centimeters), "Height unit (cm, ft_in)")
	f.StringVar(&activity, "activity-level", string(protein.Sedentary), "Activity level")
	f.StringVar(&goal, "goal", string(protein.Maintain), "Goal")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func printResult(cmd *cobra.Command, r protein.Result) {
	out := cmd.OutOrStdout()
	printer.Fprintf(out, "Daily protein:   %d g (range %d-%d g)\n", r.DailyProteinGrams, r.MinProteinGrams, r.MaxProteinGrams)
	printer.Fprintf(out, "Per body weight: %.1f g/kg, %.2f g/lb\n", r.ProteinPerKg, r.ProteinPerLb)
	printer.Fprintf(out, "Per meal:        %d g (3 meals), %d g (4 meals), %d g (5 meals)\n",
		r.ProteinPerMeal.ThreeMeals, r.ProteinPerMeal.FourMeals, r.ProteinPerMeal.FiveMeals)
	printer.Fprintf(out, "Calories:        %d kcal\n", r.ProteinCalories)
	printer.Fprintf(out, "Assessment:      %s: %s\n", r.Recommendation.Level, r.Recommendation.Message)
}
