package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/username/fridagar/internal/config"
	"github.com/username/fridagar/pkg/dateutil"
	"github.com/username/fridagar/pkg/fridagar"
)

// dayView is the JSON shape of a day, with the date as YYYY-MM-DD
type dayView struct {
	Date        string       `json:"date"`
	Key         fridagar.Key `json:"key"`
	Description string       `json:"description"`
	Holiday     bool         `json:"holiday"`
	HalfDay     bool         `json:"halfDay,omitempty"`
}

func newDayView(d fridagar.Day) dayView {
	return dayView{
		Date:        dateutil.FormatDate(d.Date),
		Key:         d.Key,
		Description: d.Description,
		Holiday:     d.Holiday,
		HalfDay:     d.HalfDay,
	}
}

func dayKind(d fridagar.Day) string {
	switch {
	case d.HalfDay:
		return "half-day"
	case d.Holiday:
		return "holiday"
	default:
		return "special"
	}
}

func formatDayLine(d fridagar.Day) string {
	return fmt.Sprintf("%s %s %s %s", dateutil.FormatDate(d.Date), dayKind(d), d.Key, d.Description)
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output.Format == config.FormatJSON
}

func (a *app) writeJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (a *app) printDays(days []fridagar.Day) error {
	if a.jsonOutput() {
		views := make([]dayView, 0, len(days))
		for _, d := range days {
			views = append(views, newDayView(d))
		}
		return a.writeJSON(views)
	}

	for _, d := range days {
		fmt.Fprintln(a.out, formatDayLine(d))
	}
	return nil
}

func (a *app) printKeyed(days map[fridagar.Key]fridagar.Day) error {
	if a.jsonOutput() {
		views := make(map[fridagar.Key]dayView, len(days))
		for k, d := range days {
			views[k] = newDayView(d)
		}
		return a.writeJSON(views)
	}

	for _, k := range fridagar.Keys() {
		if d, ok := days[k]; ok {
			fmt.Fprintf(a.out, "%-9s %s\n", k+":", formatDayLine(d))
		}
	}
	return nil
}

func (a *app) printCheck(date time.Time, day *fridagar.Day) error {
	if a.jsonOutput() {
		var view *dayView
		if day != nil {
			v := newDayView(*day)
			view = &v
		}
		return a.writeJSON(struct {
			Date  string   `json:"date"`
			Match *dayView `json:"match"`
		}{dateutil.FormatDate(date), view})
	}

	if day == nil {
		fmt.Fprintf(a.out, "%s no match\n", dateutil.FormatDate(date))
		return nil
	}
	fmt.Fprintln(a.out, formatDayLine(*day))
	return nil
}

func (a *app) printWorkdays(from time.Time, offset int, result time.Time) error {
	if a.jsonOutput() {
		return a.writeJSON(struct {
			From   string `json:"from"`
			Offset int    `json:"offset"`
			Date   string `json:"date"`
		}{dateutil.FormatDate(from), offset, dateutil.FormatDate(result)})
	}

	fmt.Fprintln(a.out, dateutil.FormatDate(result))
	return nil
}

func (a *app) printMonth(info *fridagar.MonthInfo) error {
	if a.jsonOutput() {
		type dayInfoView struct {
			Date         string `json:"date"`
			Type         string `json:"type"`
			WorkingHours int    `json:"workingHours"`
			Note         string `json:"note,omitempty"`
		}
		days := make([]dayInfoView, 0, len(info.Days))
		for _, d := range info.Days {
			days = append(days, dayInfoView{
				Date:         dateutil.FormatDate(d.Date),
				Type:         d.Type.String(),
				WorkingHours: d.WorkingHours,
				Note:         d.Note,
			})
		}
		return a.writeJSON(struct {
			Year         int           `json:"year"`
			Month        int           `json:"month"`
			WorkDays     int           `json:"workDays"`
			Weekends     int           `json:"weekends"`
			Holidays     int           `json:"holidays"`
			WorkingHours int           `json:"workingHours"`
			Days         []dayInfoView `json:"days"`
		}{info.Year, int(info.Month), info.WorkDays, info.Weekends, info.Holidays, info.WorkingHours, days})
	}

	fmt.Fprintf(a.out, "%04d-%02d\n", info.Year, int(info.Month))
	fmt.Fprintln(a.out, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(a.out, "  Working days:   %d\n", info.WorkDays)
	fmt.Fprintf(a.out, "  Working hours:  %dh\n", info.WorkingHours)
	fmt.Fprintf(a.out, "  Weekend days:   %d\n", info.Weekends)
	fmt.Fprintf(a.out, "  Holidays:       %d\n", info.Holidays)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "  Date       | Day | Type      | Hours | Note")
	fmt.Fprintln(a.out, "-------------+-----+-----------+-------+----------------")
	for _, d := range info.Days {
		fmt.Fprintf(a.out, "  %s | %s | %-9s | %4dh | %s\n",
			dateutil.FormatDate(d.Date),
			d.Date.Weekday().String()[:3],
			d.Type,
			d.WorkingHours,
			d.Note)
	}
	return nil
}
