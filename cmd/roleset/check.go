package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/trevex/roleset"
)

func newCheckCmd(log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] role...",
		Short: "Assert that the held roles cover the required ones",
		Long: `Check builds a subject from the --held roles and asserts it against
the required roles given as arguments. On success it prints "granted";
on a denied check the missing roles are reported and the command fails.`,
	}

	var (
		held      []string
		anyOf     bool
		anonymous bool
	)

	flags := cmd.Flags()
	flags.StringSliceVar(&held, "held", nil, "roles the subject holds")
	flags.BoolVar(&anyOf, "any", false, "require any one of the roles instead of all of them")
	flags.BoolVar(&anonymous, "anonymous", false, "check without a signed-in subject")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		checker := roleset.New(roleset.WithLogger(log))

		ctx := roleset.Anonymous
		if !anonymous {
			ctx = roleset.SignedIn(roleset.StaticUser(held...))
		}

		assert := checker.Assert
		if anyOf {
			assert = checker.AssertAny
		}
		if err := assert(ctx, args...); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "granted")
		return nil
	}

	return cmd
}
