package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/validation"
)

// Set at link time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and built-in defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return nil
			}
			fmt.Fprintf(out, "fieldkit %s (commit %s, built %s)\n", version, commit, date)
			fmt.Fprintf(out, "catalogs: %s\n", strings.Join(validation.Locales(), ", "))
			fmt.Fprintf(out, "settle delay: %s\n", field.DefaultSettleDelay)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}
