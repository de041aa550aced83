package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newProjectImportCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, start, requiredEnd string
	var workAllDays bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			p := &domain.Project{
				ID:           uuid.New().String(),
				Name:         name,
				StartDate:    startDate,
				SkipWeekends: !workAllDays,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}

			if requiredEnd != "" {
				end, err := time.Parse("2006-01-02", requiredEnd)
				if err != nil {
					return fmt.Errorf("invalid required end date %q: %w", requiredEnd, err)
				}
				p.RequiredEnd = &end
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", p.Name, shortUUID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&requiredEnd, "required-end", "", "Required end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&workAllDays, "work-all-days", false, "Treat weekends as working days")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				end := "-"
				if p.RequiredEnd != nil {
					end = p.RequiredEnd.Format("2006-01-02")
				}
				cal := "work week"
				if !p.SkipWeekends {
					cal = "all days"
				}
				rows = append(rows, []string{
					shortUUID(p.ID),
					p.Name,
					p.StartDate.Format("2006-01-02"),
					end,
					cal,
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Name", "Start", "Required End", "Calendar"},
				rows,
			))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details and task tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			tree, err := app.Tasks.Tree(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(p.Name))
			fmt.Printf("%s %s\n", formatter.Dim("ID:"), p.ID)
			fmt.Printf("%s %s\n", formatter.Dim("Start:"), p.StartDate.Format("2006-01-02"))
			if p.RequiredEnd != nil {
				fmt.Printf("%s %s\n", formatter.Dim("Required end:"), p.RequiredEnd.Format("2006-01-02"))
			}
			if p.SkipWeekends {
				fmt.Printf("%s work week\n", formatter.Dim("Calendar:"))
			} else {
				fmt.Printf("%s all days\n", formatter.Dim("Calendar:"))
			}
			fmt.Println()
			fmt.Print(formatter.RenderWBSTree(tree))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, start, requiredEnd string
	var workAllDays bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = startDate
			}
			if cmd.Flags().Changed("required-end") {
				if requiredEnd == "" {
					p.RequiredEnd = nil
				} else {
					end, err := time.Parse("2006-01-02", requiredEnd)
					if err != nil {
						return fmt.Errorf("invalid required end date %q: %w", requiredEnd, err)
					}
					p.RequiredEnd = &end
				}
			}
			if cmd.Flags().Changed("work-all-days") {
				p.SkipWeekends = !workAllDays
			}
			p.UpdatedAt = time.Now()

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&requiredEnd, "required-end", "", "Required end date (YYYY-MM-DD, empty clears)")
	cmd.Flags().BoolVar(&workAllDays, "work-all-days", false, "Treat weekends as working days")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project and all its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", shortUUID(projectID))
			return nil
		},
	}
}

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportProject(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported project %s (%s): %d tasks, %d dependencies, %d holidays\n",
				res.Project.Name, shortUUID(res.Project.ID),
				res.TaskCount, res.DependencyCount, res.HolidayCount)
			return nil
		},
	}
}

// shortUUID trims a UUID down to its first segment for display.
func shortUUID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
