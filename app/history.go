package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/clock"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const (
	noRecordsMsg = "No sessions or breaks found for the specified time range"
	dateLayout   = "Jan 02, 2006 03:04 PM"
	dayLayout    = "Mon Jan 02"
	barChartChar = "▇"
)

// summary totals the completed sessions in a history listing.
type summary struct {
	Sessions int
	Breaks   int
	Focused  time.Duration
}

func summarise(records []*models.Record) summary {
	var s summary

	for _, r := range records {
		if r.Phase == clock.Session.String() {
			s.Sessions++
			s.Focused += time.Duration(r.Minutes) * time.Minute

			continue
		}

		s.Breaks++
	}

	return s
}

// sinceTime resolves the --since value. An empty value means the start of the
// current day.
func sinceTime(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return timeutil.RoundToStart(now), nil
	}

	since, err := timeutil.FromStr(value, now)
	if err != nil {
		return time.Time{}, errParseSince.Fmt(value).Wrap(err)
	}

	if since.After(now) {
		return time.Time{}, errInvalidRange
	}

	return since, nil
}

// printRecordsTable prints a history table followed by the totals.
func printRecordsTable(w io.Writer, records []*models.Record) {
	tableBody := make([][]string, 0, len(records)+1)

	tableBody = append(tableBody, []string{
		"#", "PHASE", "STARTED", "ENDED", "LENGTH", "ELAPSED",
	})

	for i, r := range records {
		phase := ui.Cyan(r.Phase)
		if r.Phase == clock.Session.String() {
			phase = ui.Green(r.Phase)
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			phase,
			r.StartTime.Local().Format(dateLayout),
			r.EndTime.Local().Format(dateLayout),
			fmt.Sprintf("%d min", r.Minutes),
			r.Duration().Round(time.Second).String(),
		})
	}

	ui.PrintTable(tableBody, w)

	s := summarise(records)

	fmt.Fprintf(
		w,
		"%s %d sessions, %d breaks, %s focused\n",
		ui.Highlight("Total:"),
		s.Sessions,
		s.Breaks,
		s.Focused,
	)
}

// dailyFocus returns the focused minutes per day, oldest first.
func dailyFocus(records []*models.Record) []pterm.Bar {
	totals := make(map[time.Time]int)

	var days []time.Time

	for _, r := range records {
		if r.Phase != clock.Session.String() {
			continue
		}

		day := timeutil.RoundToStart(r.EndTime.Local())
		if _, ok := totals[day]; !ok {
			days = append(days, day)
		}

		totals[day] += r.Minutes
	}

	slices.SortFunc(days, func(a, b time.Time) int {
		return a.Compare(b)
	})

	bars := make([]pterm.Bar, 0, len(days))

	for _, day := range days {
		bars = append(bars, pterm.Bar{
			Label: day.Format(dayLayout),
			Value: totals[day],
		})
	}

	return bars
}

// printDailyChart prints a bar chart of focused minutes per day.
func printDailyChart(w io.Writer, records []*models.Record) {
	bars := dailyFocus(records)
	if len(bars) == 0 {
		return
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	fmt.Fprintf(w, "\n%s\n%s\n", ui.Highlight("Minutes focused per day"), chart)
}

// listRecords prints records as a table or, when asJSON is set, as a JSON
// array.
func listRecords(w io.Writer, records []*models.Record, asJSON bool) error {
	if asJSON {
		if records == nil {
			records = []*models.Record{}
		}

		b, err := json.Marshal(records)
		if err != nil {
			return errEncodeHistory.Wrap(err)
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	if len(records) == 0 {
		pterm.Info.WithWriter(w).Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(w, records)
	printDailyChart(w, records)

	return nil
}
