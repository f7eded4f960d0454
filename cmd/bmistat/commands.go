package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/dataset"
	"bmidash.org/internal/logging"
	"bmidash.org/internal/utils"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bmistat",
		Short:         "Classify BMI values and summarize a BMI dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newClassifyCmd(), newCalcCmd(), newCurveCmd(), newDistributionCmd())
	return root
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify BMI [BMI...]",
		Short: "Print the WHO category of each BMI value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err == nil {
					err = utils.ValidateFinite(v)
				}
				if err != nil {
					return fmt.Errorf("invalid BMI %q: %w", arg, err)
				}
				c := bmi.Classify(v)
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", strconv.FormatFloat(v, 'f', -1, 64), categoryStyle(c).Render(c.Label))
			}
			return nil
		},
	}
}

func newCalcCmd() *cobra.Command {
	var height, weight float64

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute BMI from height (cm) and weight (kg)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var h, w *float64
			if cmd.Flags().Changed("height") {
				h = &height
			}
			if cmd.Flags().Changed("weight") {
				w = &weight
			}

			result := bmi.Calculate(h, w)
			out := cmd.OutOrStdout()
			if result.Status != bmi.StatusOK {
				fmt.Fprintln(out, result.Text())
				return nil
			}
			fmt.Fprintln(out, categoryStyle(result.Category).Render(result.Text()))
			fmt.Fprintln(out, mutedStyle.Render(bmi.Attribution))
			return nil
		},
	}
	cmd.Flags().Float64Var(&height, "height", 0, "Height in centimeters")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kilograms")
	return cmd
}

func newCurveCmd() *cobra.Command {
	var target float64
	var minHeight, maxHeight, step int

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the weights that give a constant BMI across heights",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fieldErrors := utils.ValidateHeightRange(minHeight, maxHeight); len(fieldErrors) > 0 {
				return fmt.Errorf("invalid height range: %v", fieldErrors)
			}
			if step < 1 {
				return fmt.Errorf("step must be positive, got %d", step)
			}

			points := bmi.GenerateCurve(target, bmi.HeightRange{Min: minHeight, Max: maxHeight})
			style := categoryStyle(bmi.Classify(target))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.Render(fmt.Sprintf("BMI: %s", strconv.FormatFloat(target, 'f', -1, 64))))
			for i := 0; i < len(points); i += step {
				fmt.Fprintf(out, "%6.0f cm  %7.2f kg\n", points[i].Height, points[i].Weight)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&target, "bmi", 20, "Target BMI")
	cmd.Flags().IntVar(&minHeight, "min-height", bmi.DefaultHeightRange.Min, "First height in centimeters")
	cmd.Flags().IntVar(&maxHeight, "max-height", bmi.DefaultHeightRange.Max, "Height bound in centimeters (exclusive)")
	cmd.Flags().IntVar(&step, "step", 10, "Print every n-th height")
	return cmd
}

func newDistributionCmd() *cobra.Command {
	var path string
	var width int

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Print the share of each BMI category in a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewStructuredLogger(cmd.ErrOrStderr(), slog.LevelWarn)
			source, err := dataset.Open(path, logger)
			if err != nil {
				return err
			}

			values, err := source.BMIValues(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderDistribution(bmi.Aggregate(values), width))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "data", "BMI.csv", "Dataset path (.csv or .db/.sqlite)")
	cmd.Flags().IntVar(&width, "width", 40, "Bar width in cells")
	return cmd
}
