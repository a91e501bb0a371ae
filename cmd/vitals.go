package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/afyajamii/afya-cli/internal/domain"
)

func newVitalsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vitals",
		Short: "Submit vitals for AI risk assessment",
	}

	cmd.AddCommand(newVitalsSubmitCmd(app))

	return cmd
}

func newVitalsSubmitCmd(app *app) *cobra.Command {
	var flags vitalsFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit current measurements and show the assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			submission, err := flags.parse()
			if err != nil {
				return err
			}

			var result domain.VitalsResult
			fetch := func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = app.service.SubmitVitals(ctx, submission)
				return fetchErr
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Analyzing vitals...", fetch); err != nil {
				return err
			}

			rendered, err := app.assessmentRenderer(result)
			if err != nil {
				return fmt.Errorf("render assessment: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.age, "age", "", "Age in years")
	cmd.Flags().StringVar(&flags.systolic, "systolic", "", "Systolic blood pressure (mmHg)")
	cmd.Flags().StringVar(&flags.diastolic, "diastolic", "", "Diastolic blood pressure (mmHg)")
	cmd.Flags().StringVar(&flags.sugar, "sugar", "", "Blood sugar (mmol/L)")
	cmd.Flags().StringVar(&flags.temp, "temp", "", "Body temperature")
	cmd.Flags().StringVar(&flags.tempUnit, "temp-unit", string(domain.UnitCelsius), "Temperature unit (celsius|fahrenheit)")
	cmd.Flags().StringVar(&flags.heartRate, "heart-rate", "", "Heart rate (bpm)")
	cmd.Flags().StringVar(&flags.history, "history", "", "Optional free-text patient history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("systolic")
	_ = cmd.MarkFlagRequired("diastolic")
	_ = cmd.MarkFlagRequired("sugar")
	_ = cmd.MarkFlagRequired("temp")
	_ = cmd.MarkFlagRequired("heart-rate")

	return cmd
}

// vitalsFlags keeps the raw string values the user typed. Parsing happens at
// submit time so an unparseable field rejects the submission before any
// network call is made.
type vitalsFlags struct {
	age       string
	systolic  string
	diastolic string
	sugar     string
	temp      string
	tempUnit  string
	heartRate string
	history   string
}

func (f vitalsFlags) parse() (domain.VitalsSubmission, error) {
	var submission domain.VitalsSubmission

	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"age", f.age, &submission.Age},
		{"systolic", f.systolic, &submission.SystolicBP},
		{"diastolic", f.diastolic, &submission.DiastolicBP},
		{"sugar", f.sugar, &submission.BloodSugar},
		{"temp", f.temp, &submission.BodyTemp},
		{"heart-rate", f.heartRate, &submission.HeartRate},
	}

	for _, field := range fields {
		value, err := strconv.ParseFloat(field.raw, 64)
		if err != nil {
			return domain.VitalsSubmission{}, fmt.Errorf("--%s must be a valid number, got %q", field.name, field.raw)
		}
		*field.dst = value
	}

	unit := domain.TemperatureUnit(f.tempUnit)
	switch unit {
	case domain.UnitCelsius, domain.UnitFahrenheit:
	default:
		return domain.VitalsSubmission{}, fmt.Errorf("--temp-unit must be celsius or fahrenheit, got %q", f.tempUnit)
	}

	submission.BodyTempUnit = unit
	submission.PatientHistory = f.history

	return submission, nil
}
