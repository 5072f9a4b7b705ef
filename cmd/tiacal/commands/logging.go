package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const logLevelFlag = "log-level"

// AddLogLevelFlag registers a persistent --log-level flag on cmd that sets the
// level of logger before any subcommand runs.
func AddLogLevelFlag(cmd *cobra.Command, logger *logrus.Logger) {
	cmd.PersistentFlags().String(logLevelFlag, "", "log level (trace, debug, info, warn, error); defaults to the profile's log_level")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, err := cmd.Flags().GetString(logLevelFlag)
		if err != nil || level == "" {
			return err
		}

		return setLevel(logger, level)
	}
}

func setLevel(logger *logrus.Logger, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logger.SetLevel(lvl)

	return nil
}

// logLevelSet reports whether --log-level was given on the command line.
func logLevelSet(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup(logLevelFlag)
	return f != nil && f.Changed
}
