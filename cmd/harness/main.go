package main

import (
	"fmt"
	"os"

	"github.com/fin-tools/descuento/pkg/harness"
	"github.com/fin-tools/descuento/pkg/harness/export"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type batteryCmd struct {
	profilePath string
	outputDir   string
	logger      zerolog.Logger
}

func newBatteryCmd(logger zerolog.Logger) *cobra.Command {
	bc := &batteryCmd{logger: logger}
	cmd := &cobra.Command{
		Use:          "descuento-pruebas",
		Short:        "Run the discount calculator verification battery and write its report",
		RunE:         bc.run,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&bc.profilePath, "profile", "", "Path to a harness settings profile")
	cmd.Flags().StringVar(&bc.outputDir, "output-dir", "", "Directory for the generated report (overrides the profile)")

	return cmd
}

func (bc *batteryCmd) run(cmd *cobra.Command, args []string) error {
	settings := harness.DefaultSettings()
	if bc.profilePath != "" {
		loaded, err := harness.LoadSettings(bc.profilePath)
		if err != nil {
			return err
		}
		settings = *loaded
	}
	if bc.outputDir != "" {
		settings.OutputDir = bc.outputDir
	}

	runner := harness.NewRunner(bc.logger)
	report := runner.Run(harness.Battery())

	// The report is written exactly once, after the whole battery, and a
	// write failure fails the harness run even when every case passed.
	path, err := export.NewReporter().Handle(report, settings.OutputDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Informe de pruebas generado: %s\n", path)
	return nil
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := newBatteryCmd(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
