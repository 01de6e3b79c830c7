package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReplaceCmd(opts *rootOptions) *cobra.Command {
	var src subjectFlags

	cmd := &cobra.Command{
		Use:   "replace DOC REPL [SUBJECT]",
		Short: "Replace every match of a document",
		Long:  `Replaces every match in the subject with REPL, where $1 and ${name} expand to submatches.`,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := opts.compile(cmd, args[0], 0)
			if err != nil {
				return err
			}
			text, err := src.text(cmd, args, 2, opts.log)
			if err != nil {
				return err
			}

			out, n := re.SubstituteCount(text, args[1])
			opts.log.Debugf("Replaced %d matches", n)

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	src.register(cmd)
	return cmd
}
