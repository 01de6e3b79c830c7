package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/reverbose/json"
	"go.dw1.io/reverbose/verbose"
)

type matchResult struct {
	Match  string            `json:"match"`
	Span   [2]int            `json:"span"`
	Groups []string          `json:"groups,omitempty"`
	Named  map[string]string `json:"named,omitempty"`
}

func newMatchCmd(opts *rootOptions) *cobra.Command {
	var (
		src        subjectFlags
		all        bool
		full       bool
		asJSON     bool
		ignoreCase bool
		multiline  bool
		dotAll     bool
	)

	cmd := &cobra.Command{
		Use:   "match DOC [SUBJECT]",
		Short: "Print the matches of a document in a subject",
		Long:  `Prints each match on its own line. Exits with status 1 when nothing matched.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags verbose.Flags
			if ignoreCase {
				flags |= verbose.IgnoreCase
			}
			if multiline {
				flags |= verbose.Multiline
			}
			if dotAll {
				flags |= verbose.DotAll
			}

			re, err := opts.compile(cmd, args[0], flags)
			if err != nil {
				return err
			}
			text, err := src.text(cmd, args, 1, opts.log)
			if err != nil {
				return err
			}

			var matches []verbose.Match
			switch {
			case all:
				matches = re.FindAll(text, -1)
			case full:
				if m, ok := re.FullMatch(text); ok {
					matches = append(matches, m)
				}
			default:
				if m, ok := re.Search(text); ok {
					matches = append(matches, m)
				}
			}

			opts.log.Debugf("Found %d matches", len(matches))
			if len(matches) == 0 {
				return errNoMatch
			}

			out := cmd.OutOrStdout()
			for _, m := range matches {
				if !asJSON {
					fmt.Fprintln(out, m.String())
					continue
				}
				data, err := json.Marshal(newMatchResult(re, m))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every match instead of the first")
	cmd.Flags().BoolVar(&full, "full", false, "Require the match to span the whole subject")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print matches as JSON objects with their groups")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "^ and $ match at line breaks")
	cmd.Flags().BoolVarP(&dotAll, "dotall", "s", false, ". matches newlines")
	cmd.MarkFlagsMutuallyExclusive("all", "full")
	return cmd
}

func newMatchResult(re *verbose.Regexp, m verbose.Match) matchResult {
	start, end := m.Span(0)
	res := matchResult{Match: m.String(), Span: [2]int{start, end}, Groups: m.Groups()}

	for _, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		if v, ok := m.Named(name); ok {
			if res.Named == nil {
				res.Named = make(map[string]string)
			}
			res.Named[name] = v
		}
	}
	return res
}
