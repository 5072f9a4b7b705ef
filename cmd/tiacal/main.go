// Package main provides the entry point for the tiacal CLI tool.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arloliu/tiacal/cmd/tiacal/commands"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	rootCmd := &cobra.Command{
		Use:   "tiacal",
		Short: "Transimpedance amplifier sweep calibration",
		Long: `tiacal maps a recorded transimpedance amplifier sweep to input currents
using a hand-measured reference table.

Commands:
  calibrate  calibrate a sweep log and print the I-V curve
  profile    print the effective calibration profile`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddLogLevelFlag(rootCmd, logger)
	rootCmd.AddCommand(commands.NewCalibrateCommand(logger))
	rootCmd.AddCommand(commands.NewProfileCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
