package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofia-hackathon/registration/internal/registration/domain"
)

func Majors() *cobra.Command {
	return &cobra.Command{
		Use:   "majors",
		Short: "List the majors accepted by --major.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, m := range domain.Majors {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
		},
	}
}
