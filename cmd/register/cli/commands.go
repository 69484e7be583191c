// Package cli implements the register command: a terminal client for the
// hackathon registration form.
package cli

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "register",
		Short:             "Sofia University hackathon registration.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	cmd.AddCommand(Submit())
	cmd.AddCommand(Signature())
	cmd.AddCommand(Majors())
	return cmd
}
