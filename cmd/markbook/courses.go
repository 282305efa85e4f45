package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Veraticus/markbook/internal/cli"
	"github.com/Veraticus/markbook/internal/model"
)

func coursesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List configured courses",
		Long:  `Display every course in the markbook file with its entry count and category weighting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("Code"),
				headerStyle.Render("Entries"),
				headerStyle.Render("Weighting"))

			for _, cc := range cfg.Courses {
				weighting, err := model.WeightingFromSlice(cc.Weighting)
				if err != nil {
					return err
				}
				line := cli.FormatWeighting(weighting)
				if !weighting.Normalized() {
					line += " " + cli.FormatWarning(fmt.Sprintf("sums to %.2f", weighting.Sum()))
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", cc.Code, len(cc.Entries), line)
			}

			return nil
		},
	}
}

