package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage dependency edges",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepRemoveCmd(app),
		newDepListCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "add PREDECESSOR SUCCESSOR",
		Short: "Add a finish-to-start edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			pred, err := resolveTask(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			succ, err := resolveTask(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}

			if err := app.Deps.Add(ctx, projectID, pred.ID, succ.ID); err != nil {
				return err
			}

			fmt.Printf("Added dependency %s → %s\n", pred.WBSID, succ.WBSID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "remove PREDECESSOR SUCCESSOR",
		Short: "Remove a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			pred, err := resolveTask(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			succ, err := resolveTask(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}

			if err := app.Deps.Remove(ctx, pred.ID, succ.ID); err != nil {
				return err
			}

			fmt.Printf("Removed dependency %s → %s\n", pred.WBSID, succ.WBSID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dependency edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			deps, err := app.Deps.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if len(deps) == 0 {
				fmt.Println("No dependencies found.")
				return nil
			}

			tasks, err := app.Tasks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			byID := make(map[string]*domain.Task, len(tasks))
			for _, t := range tasks {
				byID[t.ID] = t
			}

			label := func(id string) string {
				if t, ok := byID[id]; ok {
					return fmt.Sprintf("%s %s", t.WBSID, t.Name)
				}
				return shortUUID(id)
			}

			rows := make([][]string, 0, len(deps))
			for _, d := range deps {
				rows = append(rows, []string{
					label(d.PredecessorTaskID),
					label(d.SuccessorTaskID),
				})
			}

			fmt.Print(formatter.RenderTable([]string{"Predecessor", "Successor"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
