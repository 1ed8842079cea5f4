package db

import (
	"fmt"
	"strings"

	"github.com/hamzabinkhalid/dataset-comparator/models"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/report"
	"github.com/urfave/cli/v2"
)

// RunsAction lists recorded comparison runs.
func RunsAction(c *cli.Context) error {
	database, err := openFromContext(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	// Print table header
	fmt.Fprintf(w, "%-36s %-20s %-8s %-8s %-8s %-8s %-30s\n",
		"Run ID", "Created", "Count1", "Count2", "Overlap", "Distinct", "Sources")
	fmt.Fprintln(w, strings.Repeat("-", 124))

	for _, r := range runs {
		fmt.Fprintf(w, "%-36s %-20s %-8d %-8d %-8d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Result.Count1,
			r.Result.Count2,
			r.Result.TotalOverlap,
			r.Result.DistinctOverlap,
			sourcesLabel(r),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'dscmp history show <id>' to see details\n")

	return nil
}

// RunAction shows one recorded run in full.
func RunAction(c *cli.Context) error {
	database, err := openFromContext(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}

	format, err := models.ParseOutputFormat(c.String("format"))
	if err != nil {
		return err
	}

	rep := report.Report{
		RunID:        run.RunID,
		LeftSources:  run.LeftSources,
		RightSources: run.RightSources,
		Result:       run.Result,
	}
	if format == models.FormatText {
		w := c.App.Writer
		fmt.Fprintf(w, "Run %s\n", run.RunID)
		fmt.Fprintln(w, strings.Repeat("=", 60))
		fmt.Fprintf(w, "Created: %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Left:    %s\n", strings.Join(run.LeftSources, ", "))
		fmt.Fprintf(w, "Right:   %s\n\n", strings.Join(run.RightSources, ", "))
		rep.RunID = ""
	}
	return report.Render(c.App.Writer, rep, format)
}

func sourcesLabel(r models.Run) string {
	return strings.Join(r.LeftSources, "+") + " vs " + strings.Join(r.RightSources, "+")
}
