package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Veraticus/markbook/internal/cli"
	"github.com/Veraticus/markbook/internal/common"
	"github.com/Veraticus/markbook/internal/markbook"
)

func reportCmd() *cobra.Command {
	var (
		breakdown bool
		drop      []int
	)

	cmd := &cobra.Command{
		Use:   "report [course...]",
		Short: "Compute overall grades",
		Long: `Compute the weighted overall grade of each course. With no arguments every
configured course is reported.

--drop removes entries by index before computing, in the order given. Each
removal shifts later entries down, so "--drop 0 --drop 0" removes the first two.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			codes := args
			if len(codes) == 0 {
				codes = cfg.Codes()
			}
			if len(drop) > 0 && len(codes) != 1 {
				return fmt.Errorf("--drop needs exactly one course, got %d", len(codes))
			}

			out := cmd.OutOrStdout()
			for _, code := range codes {
				course, err := loadCourse(cfg, code)
				if err != nil {
					return err
				}

				if err := dropEntries(out, course, drop); err != nil {
					return err
				}

				if err := course.ComputeOverall(); err != nil {
					common.LogError(err, "Failed to compute overall", common.Fields{"course": course.Code()})
					return common.NewUserError("failed to compute overall for "+course.Code(), err)
				}

				fmt.Fprintln(out, cli.FormatSummary(course))
				if breakdown {
					fmt.Fprintln(out, cli.FormatBreakdown(course))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Show each category score")
	cmd.Flags().IntSliceVar(&drop, "drop", nil, "Entry index to leave out (repeatable)")

	return cmd
}

func dropEntries(out io.Writer, course *markbook.Course, indexes []int) error {
	for _, index := range indexes {
		entry, err := course.Entry(index)
		if err != nil {
			return common.NewUserError(fmt.Sprintf("cannot drop entry %d from %s", index, course.Code()), err)
		}
		if err := course.RemoveEntry(index); err != nil {
			return common.NewUserError(fmt.Sprintf("cannot drop entry %d from %s", index, course.Code()), err)
		}
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Dropped entry %d (%s) from %s", index, entry.Title, course.Code())))
	}
	return nil
}
