package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute project schedules",
	}

	cmd.AddCommand(
		newScheduleComputeCmd(app),
		newSchedulePreviewCmd(app),
	)

	return cmd
}

func newScheduleComputeCmd(app *App) *cobra.Command {
	var project string
	var gantt bool

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute and persist the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			result, err := app.Schedule.Recompute(ctx, projectID)
			if err != nil {
				return err
			}
			printScheduleResult(result, gantt)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().BoolVar(&gantt, "gantt", false, "Render a timeline instead of a table")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSchedulePreviewCmd(app *App) *cobra.Command {
	var project string
	var gantt bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Compute the schedule without persisting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			result, err := app.Schedule.Preview(ctx, projectID)
			if err != nil {
				return err
			}
			printScheduleResult(result, gantt)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().BoolVar(&gantt, "gantt", false, "Render a timeline instead of a table")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func printScheduleResult(result *contract.ScheduleResult, gantt bool) {
	if gantt {
		fmt.Print(formatter.RenderGantt(result))
	} else {
		rows := make([][]string, 0, len(result.Tasks))
		for _, t := range result.Tasks {
			dur := strconv.Itoa(t.DurationDays) + "d"
			if t.Milestone {
				dur = formatter.Dim("milestone")
			}
			rows = append(rows, []string{
				formatter.CriticalMark(t.IsCritical),
				t.WBSID,
				t.Name,
				t.Start.Format("2006-01-02"),
				t.End.Format("2006-01-02"),
				dur,
				strconv.Itoa(t.TotalFloat),
			})
		}
		fmt.Print(formatter.RenderTable(
			[]string{"", "WBS", "Name", "Start", "End", "Duration", "Float"},
			rows,
		))
	}

	fmt.Println()
	if !result.ProjectEnd.IsZero() {
		fmt.Printf("%s %s\n", formatter.Dim("Project end:"), result.ProjectEnd.Format("2006-01-02"))
	}
	if len(result.CriticalPath) > 0 {
		fmt.Printf("%s %s\n", formatter.Dim("Critical path:"), strings.Join(result.CriticalPath, " → "))
	}
	if !result.Persisted {
		fmt.Println(formatter.Dim("(preview only, nothing persisted)"))
	}
}
