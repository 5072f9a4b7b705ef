package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/tiacal"
	"github.com/arloliu/tiacal/calibration"
	"github.com/arloliu/tiacal/profile"
)

const (
	calibrateCmdUse   = "calibrate <sweep-log>"
	calibrateCmdShort = "Calibrate a sweep log and print the calibrated I-V curve"
	calibrateArgCount = 1

	profileFlag    = "profile"
	formatFlag     = "format"
	skipEmptyFlag  = "skip-empty"
	edgeTrimFlag   = "edge-trim"
	profileUsage   = "YAML calibration profile (defaults to the 22x board)"
	formatUsage    = "output format: table, csv or json"
	skipEmptyUsage = "drop plateaus that are empty after trimming instead of failing"
	edgeTrimUsage  = "plateaus excluded from each end of the sweep before fitting"
)

// NewCalibrateCommand creates the calibrate subcommand.
func NewCalibrateCommand(logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   calibrateCmdUse,
		Short: calibrateCmdShort,
		Long: `Calibrate reads a sweep log (optionally .zst, .s2/.sz or .lz4 compressed),
detects the plateaus of the current staircase and maps every plateau to the
input current that produced it.`,
		Args: cobra.ExactArgs(calibrateArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalibrate(cmd, logger, args[0])
		},
	}

	cmd.Flags().StringP(profileFlag, "p", "", profileUsage)
	cmd.Flags().StringP(formatFlag, "f", formatTable, formatUsage)
	cmd.Flags().Bool(skipEmptyFlag, false, skipEmptyUsage)
	cmd.Flags().Int(edgeTrimFlag, calibration.DefaultEdgeTrim, edgeTrimUsage)

	return cmd
}

func runCalibrate(cmd *cobra.Command, logger *logrus.Logger, path string) error {
	prof, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	if !logLevelSet(cmd) {
		level, levelErr := prof.Level()
		if levelErr != nil {
			return levelErr
		}
		logger.SetLevel(level)
	}

	if cmd.Flags().Changed(skipEmptyFlag) {
		prof.SkipEmptySegments, _ = cmd.Flags().GetBool(skipEmptyFlag)
	}
	if cmd.Flags().Changed(edgeTrimFlag) {
		prof.EdgeTrim, _ = cmd.Flags().GetInt(edgeTrimFlag)
	}

	format, _ := cmd.Flags().GetString(formatFlag)
	render, err := rendererFor(format)
	if err != nil {
		return err
	}

	result, err := tiacal.CalibrateFile(path, prof.Options(logger.WithField("sweep", path))...)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), result)
}

func loadProfile(cmd *cobra.Command) (profile.Profile, error) {
	path, _ := cmd.Flags().GetString(profileFlag)
	if path == "" {
		return profile.Default(), nil
	}

	prof, err := profile.Load(path)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	return prof, nil
}
