package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/fuelflow/meal-analyzer/cycle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type phaseRange struct {
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type cycleReport struct {
	Prediction struct {
		Period     phaseRange `yaml:"period"`
		Follicular phaseRange `yaml:"follicular"`
		Ovulation  phaseRange `yaml:"ovulation"`
		Luteal     phaseRange `yaml:"luteal"`
	} `yaml:"prediction"`
	NextPeriod   string `yaml:"next_period"`
	DayInCycle   int    `yaml:"day_in_cycle"`
	CurrentPhase string `yaml:"current_phase"`
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Predict menstrual cycle phases",
	Long: `Predict the period, follicular, ovulation and luteal date ranges from the
last period start date, and show which phase today falls in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startValue, _ := cmd.Flags().GetString("start")
		length, _ := cmd.Flags().GetInt("length")
		todayValue, _ := cmd.Flags().GetString("today")
		output, _ := cmd.Flags().GetString("output")

		start, err := cycle.ParseDate(startValue)
		if err != nil {
			return err
		}

		today := time.Now()
		if todayValue != "" {
			if today, err = cycle.ParseDate(todayValue); err != nil {
				return err
			}
		}

		report, err := buildCycleReport(start, length, today)
		if err != nil {
			return err
		}

		switch output {
		case "yaml":
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			defer encoder.Close()
			return encoder.Encode(report)
		case "text":
			writeCycleReport(cmd.OutOrStdout(), report)
			return nil
		default:
			return fmt.Errorf("unsupported output format: %s", output)
		}
	},
}

func buildCycleReport(start time.Time, length int, today time.Time) (cycleReport, error) {
	var report cycleReport

	prediction, err := cycle.PredictPhases(start, length)
	if err != nil {
		return report, err
	}
	day, err := cycle.DayInCycle(start, length, today)
	if err != nil {
		return report, err
	}
	phase, err := cycle.CurrentPhase(start, length, today)
	if err != nil {
		return report, err
	}

	toRange := func(r cycle.DateRange) phaseRange {
		return phaseRange{StartDate: r.Start.Format(cycle.DateLayout), EndDate: r.End.Format(cycle.DateLayout)}
	}
	report.Prediction.Period = toRange(prediction.Period)
	report.Prediction.Follicular = toRange(prediction.Follicular)
	report.Prediction.Ovulation = toRange(prediction.Ovulation)
	report.Prediction.Luteal = toRange(prediction.Luteal)
	report.NextPeriod = prediction.NextPeriod.Format(cycle.DateLayout)
	report.DayInCycle = day
	report.CurrentPhase = string(phase)
	return report, nil
}

func writeCycleReport(w io.Writer, report cycleReport) {
	fmt.Fprintf(w, "Current Cycle Phase: %s (day %d)\n\n", report.CurrentPhase, report.DayInCycle)
	fmt.Fprintf(w, "%-18s %s - %s\n", cycle.PhaseMenstrual, report.Prediction.Period.StartDate, report.Prediction.Period.EndDate)
	fmt.Fprintf(w, "%-18s %s - %s\n", cycle.PhaseFollicular, report.Prediction.Follicular.StartDate, report.Prediction.Follicular.EndDate)
	fmt.Fprintf(w, "%-18s %s - %s\n", cycle.PhaseOvulation, report.Prediction.Ovulation.StartDate, report.Prediction.Ovulation.EndDate)
	fmt.Fprintf(w, "%-18s %s - %s\n", cycle.PhaseLuteal, report.Prediction.Luteal.StartDate, report.Prediction.Luteal.EndDate)
	fmt.Fprintf(w, "\nExpected next period: %s\n", report.NextPeriod)
}

func init() {
	rootCmd.AddCommand(cycleCmd)

	cycleCmd.Flags().StringP("start", "s", "", "Last period start date (YYYY-MM-DD)")
	cycleCmd.Flags().IntP("length", "l", cycle.DefaultCycleLength,
		fmt.Sprintf("Cycle length in days (%d-%d)", cycle.MinCycleLength, cycle.MaxCycleLength))
	cycleCmd.Flags().String("today", "", "Date to compute the current phase for (default: today)")
	cycleCmd.Flags().StringP("output", "o", "text", "Output format (text, yaml)")
	_ = cycleCmd.MarkFlagRequired("start")
}
