package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/validation"
)

type lengthOptions struct {
	min   int
	max   int
	label string
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run a field validator against a value",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "email VALUE",
		Short: "Check an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, func(v *validation.Validator) string {
				return v.Email(args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "password VALUE",
		Short: "Check password length and composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, func(v *validation.Validator) string {
				return v.Password(args[0])
			})
		},
	})

	var requiredLabel string
	required := &cobra.Command{
		Use:   "required VALUE",
		Short: "Check that a value is not blank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, func(v *validation.Validator) string {
				return v.Required(args[0], requiredLabel)
			})
		},
	}
	required.Flags().StringVar(&requiredLabel, "label", "Value", "Field name used in the message")
	cmd.AddCommand(required)

	opts := &lengthOptions{}
	length := &cobra.Command{
		Use:   "length VALUE",
		Short: "Check a value's length in characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, func(v *validation.Validator) string {
				return v.Length(args[0], opts.min, opts.max, opts.label)
			})
		},
	}
	length.Flags().IntVar(&opts.min, "min", 0, "Minimum length")
	length.Flags().IntVar(&opts.max, "max", 100, "Maximum length")
	length.Flags().StringVar(&opts.label, "label", "Value", "Field name used in the message")
	cmd.AddCommand(length)

	return cmd
}

// runValidate prints the message, or "valid", and fails with errInvalidValue
// so the process exits non-zero.
func runValidate(cmd *cobra.Command, flags *rootFlags, check func(*validation.Validator) string) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}

	msg := check(app.Validator)
	app.Logger.DebugFields("validated", map[string]any{"command": cmd.Name(), "valid": msg == ""})
	if msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return errInvalidValue
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
