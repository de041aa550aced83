package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage calendar holidays",
	}

	cmd.AddCommand(
		newHolidayAddCmd(app),
		newHolidayListCmd(app),
		newHolidayRemoveCmd(app),
	)

	return cmd
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var project, name string

	cmd := &cobra.Command{
		Use:   "add DATE",
		Short: "Add a holiday (global unless --project is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectID := ""
			if project != "" {
				var err error
				projectID, err = resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
			}

			h, err := app.Holidays.Add(ctx, projectID, args[0], name)
			if err != nil {
				return err
			}

			scope := "global"
			if h.ProjectID != nil {
				scope = "project"
			}
			fmt.Printf("Added %s holiday %s (%s)\n", scope, h.Date.Format("2006-01-02"), h.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Scope the holiday to a project")
	cmd.Flags().StringVar(&name, "name", "", "Holiday name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var holidays []domain.Holiday
			if project != "" {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				holidays, err = app.Holidays.ListForProject(ctx, projectID)
				if err != nil {
					return err
				}
			} else {
				var err error
				holidays, err = app.Holidays.ListGlobal(ctx)
				if err != nil {
					return err
				}
			}

			if len(holidays) == 0 {
				fmt.Println("No holidays found.")
				return nil
			}

			rows := make([][]string, 0, len(holidays))
			for _, h := range holidays {
				scope := formatter.Dim("global")
				if h.ProjectID != nil {
					scope = shortUUID(*h.ProjectID)
				}
				rows = append(rows, []string{
					shortUUID(h.ID),
					h.Date.Format("2006-01-02"),
					h.Name,
					scope,
				})
			}

			fmt.Print(formatter.RenderTable([]string{"ID", "Date", "Name", "Scope"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "List the project's effective holidays (global + scoped)")

	return cmd
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Holidays.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed holiday %s\n", shortUUID(args[0]))
			return nil
		},
	}
}
