package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSplitCmd(opts *rootOptions) *cobra.Command {
	var (
		src subjectFlags
		n   int
	)

	cmd := &cobra.Command{
		Use:   "split DOC [SUBJECT]",
		Short: "Split a subject around the matches of a document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := opts.compile(cmd, args[0], 0)
			if err != nil {
				return err
			}
			text, err := src.text(cmd, args, 1, opts.log)
			if err != nil {
				return err
			}

			parts := re.Split(text, n)
			opts.log.Debugf("Split into %d parts", len(parts))
			for _, part := range parts {
				fmt.Fprintln(cmd.OutOrStdout(), part)
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().IntVarP(&n, "limit", "n", -1, "Maximum number of parts, -1 for all")
	return cmd
}
