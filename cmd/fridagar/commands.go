package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/fridagar/pkg/dateutil"
	"github.com/username/fridagar/pkg/fridagar"
)

type listFunc func(*fridagar.Calendar, ...fridagar.QueryOption) []fridagar.Day

func daysCmd(a *app, use, short string, list listFunc) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []fridagar.QueryOption
			if cmd.Flags().Changed("year") {
				opts = append(opts, fridagar.Year(year))
			}
			if cmd.Flags().Changed("month") {
				opts = append(opts, fridagar.Month(month))
			}

			days := list(a.calendar, opts...)
			a.logger.Debug("Days listed", zap.String("command", use), zap.Int("count", len(days)))

			return a.printDays(days)
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current year)")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default whole year)")

	return cmd
}

func keyedCmd(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "keyed",
		Short: "List holidays and special days by key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []fridagar.QueryOption
			if cmd.Flags().Changed("year") {
				opts = append(opts, fridagar.Year(year))
			}

			return a.printKeyed(a.calendar.AllDaysKeyed(opts...))
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current year)")

	return cmd
}

func checkCmd(a *app) *cobra.Command {
	var holidayOnly bool

	cmd := &cobra.Command{
		Use:   "check DATE",
		Short: "Check whether a date is a holiday or special day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			lookup := a.calendar.IsSpecialDay
			if holidayOnly {
				lookup = a.calendar.IsHoliday
			}

			day, err := lookup(date)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", args[0], err)
			}

			return a.printCheck(dateutil.CivilDate(date), day)
		},
	}

	cmd.Flags().BoolVar(&holidayOnly, "holiday", false, "Only match public holidays")

	return cmd
}

func workdaysCmd(a *app) *cobra.Command {
	var from string
	var halfDays bool

	cmd := &cobra.Command{
		Use:   "workdays N",
		Short: "Find the date N working days from a date",
		Example: "  fridagar workdays 10\n" +
			"  fridagar workdays --from 2023-12-29 1\n" +
			"  fridagar workdays --half-days -- -1",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[0], err)
			}

			opts := []fridagar.WorkdayOption{fridagar.IncludeHalfDays(halfDays)}
			if from != "" {
				fromDate, err := dateutil.ParseDate(from)
				if err != nil {
					return err
				}
				opts = append(opts, fridagar.From(fromDate))
			}

			ref := a.calendar.WorkdaysFromDate(0, opts...)
			result := a.calendar.WorkdaysFromDate(offset, opts...)

			return a.printWorkdays(ref, offset, result)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Reference date (default today)")
	cmd.Flags().BoolVar(&halfDays, "half-days", false, "Count Christmas Eve and New Year's Eve as workdays")

	return cmd
}

func monthCmd(a *app) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show working days and hours of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if !cmd.Flags().Changed("year") {
				year = now.Year()
			}
			if !cmd.Flags().Changed("month") {
				month = int(now.Month())
			}

			info, err := a.calendar.GetMonthInfo(year, time.Month(month))
			if err != nil {
				return fmt.Errorf("failed to get month info: %w", err)
			}

			return a.printMonth(info)
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current year)")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default current month)")

	return cmd
}
