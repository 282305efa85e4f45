package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/markbook/internal/cli"
)

func entriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entries <course>",
		Short: "List grade entries",
		Long:  `Display every grade entry of a course. The Entry # column is the index used by report --drop.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			course, err := loadCourse(cfg, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle(course.Code()+" entries"))
			fmt.Fprintln(out, cli.RenderEntries(course))
			return nil
		},
	}
}
