package commands

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/tiacal/profile"
)

// NewProfileCommand creates the profile subcommand. It prints the default
// profile, or the given profile with defaults filled in.
func NewProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [profile.yaml]",
		Short: "Print the effective calibration profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof := profile.Default()
			if len(args) == 1 {
				var err error
				if prof, err = profile.Load(args[0]); err != nil {
					return err
				}
			}

			return prof.Encode(cmd.OutOrStdout())
		},
	}
}
