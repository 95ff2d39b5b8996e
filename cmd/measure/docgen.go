package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newDocGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "man [DIR]",
			Short: "Generate man pages",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir := docDir(args, "docs/man")
				if err := os.MkdirAll(dir, 0750); err != nil {
					return err
				}
				hdr := &doc.GenManHeader{
					Title:   "MEASURE",
					Section: "1",
				}
				a.log.Debug("Generating man pages", "dir", dir)
				return doc.GenManTree(cmd.Root(), hdr, dir)
			},
		},
		&cobra.Command{
			Use:   "markdown [DIR]",
			Short: "Generate markdown pages",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir := docDir(args, "docs")
				if err := os.MkdirAll(dir, 0750); err != nil {
					return err
				}
				a.log.Debug("Generating markdown pages", "dir", dir)
				return doc.GenMarkdownTree(cmd.Root(), dir)
			},
		},
	)
	return cmd
}

func docDir(args []string, def string) string {
	if len(args) > 0 {
		return args[0]
	}
	return def
}
