package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "plannerctl",
		Short:        "Plan content themes from the command line",
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.AddCommand(
		newValidateCmd(),
		newExpandCmd(),
		newWeekCmd(),
		newTemplateCmd(),
		newICSCmd(),
	)
	return root
}

func newValidateCmd() *cobra.Command {
	var start, end, today, file, exclude string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a theme period and report conflicts with existing themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := planner.Today(time.Local)
			if today != "" {
				d, err := planner.ParseDate(today)
				if err != nil {
					return err
				}
				ref = d
			}

			result := planner.ValidateRange(start, end, ref)
			w := cmd.OutOrStdout()
			if !result.Valid {
				fmt.Fprintf(w, "invalid: %s\n", result.Message)
				return fmt.Errorf("period rejected")
			}

			themes, err := loadThemes(file)
			if err != nil {
				return err
			}
			from, _ := planner.ParseDate(start)
			to, _ := planner.ParseDate(end)
			conflicts := planner.DetectConflicts(themes, from, to, exclude)
			if len(conflicts) > 0 {
				for _, c := range conflicts {
					fmt.Fprintf(w, "conflict: %s %q (%s to %s)\n", c.ID, c.Name, c.StartDate, c.EndDate)
				}
				return fmt.Errorf("period overlaps %d theme(s)", len(conflicts))
			}

			adjStart, adjEnd := planner.WorkingPeriod(from, to)
			fmt.Fprintf(w, "valid: working period %s to %s\n", adjStart, adjEnd)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&today, "today", "", "reference date, defaults to the local date")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of existing themes")
	cmd.Flags().StringVar(&exclude, "exclude", "", "theme id to ignore when checking conflicts")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func newExpandCmd() *cobra.Command {
	var file, format string

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "List the calendar events produced by a themes file",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := loadThemes(file)
			if err != nil {
				return err
			}
			events := planner.Expand(themes)

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(w, events)
			case "yaml":
				return writeYAML(w, events)
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tDAY\tTHEME\tTYPE\tTITLE")
			for _, ev := range events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					ev.Start, ev.Resource.DayKey, ev.Resource.Theme.Name, ev.Resource.DayContent.Type, ev.Title)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of themes")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format: table, json or yaml")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newWeekCmd() *cobra.Command {
	var name, start, format string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly distribution for a theme starting on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := planner.ParseDate(start)
			if err != nil {
				return err
			}
			days := planner.WeeklyDistribution(name, date)

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(w, days)
			case "yaml":
				return writeYAML(w, days)
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tDAY\tTYPE\tTIME\tTITLE")
			for _, d := range days {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Date, d.Day, d.Content.Type, d.Content.SuggestedTime, d.Content.Title)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "theme name")
	cmd.Flags().StringVar(&start, "start", "", "any date in the week (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format: table, json or yaml")
	cmd.MarkFlagRequired("start")
	return cmd
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the weekly content template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), planner.WeeklyTemplate())
		},
	}
}

func newICSCmd() *cobra.Command {
	var file, name, output string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the events of a themes file as an iCalendar feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := loadThemes(file)
			if err != nil {
				return err
			}
			feed := planner.ExportICS(planner.Expand(themes), name, time.Now().UTC())

			if output == "" || output == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), feed)
				return err
			}
			return os.WriteFile(output, []byte(feed), 0o644)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of themes")
	cmd.Flags().StringVar(&name, "name", "Content plan", "calendar name")
	cmd.Flags().StringVarP(&output, "out", "w", "-", "file to write, - for stdout")
	cmd.MarkFlagRequired("file")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
