package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskTreeCmd(app),
		newTaskUpdateCmd(app),
		newTaskProgressCmd(app),
		newTaskStatusCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var project, wbsID, name, plannedStart, plannedEnd, notes string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			t := &domain.Task{
				ID:           uuid.New().String(),
				ProjectID:    projectID,
				WBSID:        wbsID,
				Name:         name,
				Status:       domain.TaskNotStarted,
				DurationDays: duration,
				Notes:        notes,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}

			if plannedStart != "" {
				d, err := time.Parse("2006-01-02", plannedStart)
				if err != nil {
					return fmt.Errorf("invalid planned start %q: %w", plannedStart, err)
				}
				t.PlannedStart = &d
			}
			if plannedEnd != "" {
				d, err := time.Parse("2006-01-02", plannedEnd)
				if err != nil {
					return fmt.Errorf("invalid planned end %q: %w", plannedEnd, err)
				}
				t.PlannedEnd = &d
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			if t.IsMilestone() {
				fmt.Printf("Created milestone %s %s\n", t.WBSID, t.Name)
			} else {
				fmt.Printf("Created task %s %s (%dd)\n", t.WBSID, t.Name, t.DurationDays)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&wbsID, "wbs", "", "WBS identifier (e.g. 1.2.3)")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&duration, "duration", 1, "Duration in working days (0 = milestone)")
	cmd.Flags().StringVar(&plannedStart, "planned-start", "", "Planned start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&plannedEnd, "planned-end", "", "Planned end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("wbs")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in natural WBS order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				dur := strconv.Itoa(t.DurationDays) + "d"
				if t.IsMilestone() {
					dur = formatter.Dim("milestone")
				}
				start, end := "-", "-"
				if t.ComputedStart != nil {
					start = t.ComputedStart.Format("2006-01-02")
				}
				if t.ComputedEnd != nil {
					end = t.ComputedEnd.Format("2006-01-02")
				}
				rows = append(rows, []string{
					t.WBSID,
					t.Name,
					formatter.TaskStatusBadge(t.Status),
					dur,
					start,
					end,
					fmt.Sprintf("%d%%", t.ActualProgress),
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"WBS", "Name", "Status", "Duration", "Start", "End", "Progress"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskTreeCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the WBS hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			tree, err := app.Tasks.Tree(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderWBSTree(tree))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var project, name, plannedStart, plannedEnd, notes string
	var duration int

	cmd := &cobra.Command{
		Use:   "update TASK",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := resolveTask(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("duration") {
				t.DurationDays = duration
			}
			if cmd.Flags().Changed("planned-start") {
				d, err := time.Parse("2006-01-02", plannedStart)
				if err != nil {
					return fmt.Errorf("invalid planned start %q: %w", plannedStart, err)
				}
				t.PlannedStart = &d
			}
			if cmd.Flags().Changed("planned-end") {
				d, err := time.Parse("2006-01-02", plannedEnd)
				if err != nil {
					return fmt.Errorf("invalid planned end %q: %w", plannedEnd, err)
				}
				t.PlannedEnd = &d
			}
			if cmd.Flags().Changed("notes") {
				t.Notes = notes
			}
			t.UpdatedAt = time.Now()

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %s %s\n", t.WBSID, t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in working days (0 = milestone)")
	cmd.Flags().StringVar(&plannedStart, "planned-start", "", "Planned start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&plannedEnd, "planned-end", "", "Planned end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskProgressCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "progress TASK PERCENT",
		Short: "Report task progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := resolveTask(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			pct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", args[1], err)
			}

			if err := app.Tasks.SetProgress(ctx, t.ID, pct); err != nil {
				return err
			}

			fmt.Printf("Task %s at %d%%\n", t.WBSID, pct)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "status TASK STATUS",
		Short: "Set a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := resolveTask(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.SetStatus(ctx, t.ID, domain.TaskStatus(args[1])); err != nil {
				return err
			}

			fmt.Printf("Task %s is now %s\n", t.WBSID, args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var project string
	var force bool

	cmd := &cobra.Command{
		Use:   "remove TASK",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			t, err := resolveTask(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.Delete(ctx, t.ID, force); err != nil {
				return err
			}

			fmt.Printf("Removed task %s %s\n", t.WBSID, t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().BoolVar(&force, "force", false, "Remove dependency edges touching the task first")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
