package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/reverbose/json"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		debug  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "render DOC",
		Short: "Print the regular expression a document renders to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPattern(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(p, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			fmt.Fprintln(out, p.String())
			if debug {
				fmt.Fprintf(out, "%#v\n", p)
				fmt.Fprintf(out, "hash: %016x\n", p.Hash())
			}

			opts.log.Debugf("Rendered %d fragments", p.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Also print the debug representation and structural hash")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the normalised document instead")
	return cmd
}
