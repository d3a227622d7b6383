package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kebairia/addonsbackup/internal/operations"
)

func newValidateCmd(a *app) *cobra.Command {
	var in inputFlags
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the backup inputs without copying anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			t, findings, err := operations.Prepare(in.request(cmd, a.cfg))
			printTarget(out, t)
			printFindings(out, findings)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Inputs are valid.")
			return nil
		},
	}
	in.register(validateCmd.Flags())
	return validateCmd
}
