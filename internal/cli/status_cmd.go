package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var project, asOf string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show project health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			req := contract.NewStatusRequest(projectID)
			if asOf != "" {
				d, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid as-of date %q: %w", asOf, err)
				}
				req.Now = &d
			}

			resp, err := app.Status.GetStatus(ctx, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(resp.ProjectName))
			fmt.Printf("%s %s\n", formatter.Dim("As of:"), resp.AsOf.Format("2006-01-02"))
			fmt.Printf("%s %d/%d tasks completed\n", formatter.Dim("Done:"), resp.CompletedCount, resp.TaskCount)
			fmt.Printf("%s %s\n", formatter.Dim("Overall:"),
				formatter.RenderProgress(float64(resp.OverallProgress)/100, 20))
			if resp.BehindCount > 0 {
				fmt.Printf("%s %d behind schedule\n", formatter.Dim("Behind:"), resp.BehindCount)
			}
			if resp.OverdueCount > 0 {
				fmt.Printf("%s %d overdue\n", formatter.Dim("Overdue:"), resp.OverdueCount)
			}
			fmt.Println()

			rows := make([][]string, 0, len(resp.Tasks))
			for _, t := range resp.Tasks {
				health := formatter.Dim("on track")
				switch {
				case t.IsOverdue:
					health = formatter.StyleRed.Render("overdue")
				case t.IsBehindSchedule:
					health = formatter.StyleYellow.Render("behind")
				}
				rows = append(rows, []string{
					t.WBSID,
					t.Name,
					formatter.TaskStatusBadge(t.Status),
					fmt.Sprintf("%d%%", t.ActualProgress),
					fmt.Sprintf("%d%%", t.EstimatedProgress),
					health,
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"WBS", "Name", "Status", "Actual", "Expected", "Health"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Reference date (YYYY-MM-DD), default today")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
