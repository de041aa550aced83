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

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage issues",
	}

	cmd.AddCommand(
		newIssueAddCmd(app),
		newIssueListCmd(app),
		newIssueTransitionCmd(app, "start", "Start working on an issue", domain.IssueInProgress, false),
		newIssueTransitionCmd(app, "escalate", "Escalate an issue one level", domain.IssueEscalated, true),
		newIssueTransitionCmd(app, "resolve", "Resolve an issue", domain.IssueResolved, true),
		newIssueTransitionCmd(app, "close", "Close a resolved issue", domain.IssueClosed, false),
		newIssueTransitionCmd(app, "reopen", "Reopen a resolved or closed issue", domain.IssueReopened, false),
		newIssueRemoveCmd(app),
	)

	return cmd
}

func newIssueAddCmd(app *App) *cobra.Command {
	var project, title, task string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Raise an issue",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			i := &domain.Issue{
				ID:        uuid.New().String(),
				ProjectID: projectID,
				Title:     title,
				Status:    domain.IssueOpen,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}

			if task != "" {
				t, err := resolveTask(ctx, app, projectID, task)
				if err != nil {
					return err
				}
				i.LinkedTaskID = &t.ID
			}

			if err := app.Issues.Create(ctx, i); err != nil {
				return err
			}

			fmt.Printf("Raised issue %s: %s\n", shortUUID(i.ID), i.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	cmd.Flags().StringVar(&title, "title", "", "Issue title")
	cmd.Flags().StringVar(&task, "task", "", "Linked task (WBS id)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newIssueListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			issues, err := app.Issues.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if len(issues) == 0 {
				fmt.Println("No issues found.")
				return nil
			}

			tasks, err := app.Tasks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			wbsByID := make(map[string]string, len(tasks))
			for _, t := range tasks {
				wbsByID[t.ID] = t.WBSID
			}

			rows := make([][]string, 0, len(issues))
			for _, i := range issues {
				linked := "-"
				if i.LinkedTaskID != nil {
					if wbs, ok := wbsByID[*i.LinkedTaskID]; ok {
						linked = wbs
					}
				}
				rows = append(rows, []string{
					shortUUID(i.ID),
					i.Title,
					formatter.IssueStatusBadge(i.Status, i.EscalationLevel),
					linked,
				})
			}

			fmt.Print(formatter.RenderTable([]string{"ID", "Title", "Status", "Task"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newIssueTransitionCmd(app *App, use, short string, to domain.IssueStatus, wantsNote bool) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := app.Issues.Transition(context.Background(), args[0], to, note)
			if err != nil {
				return err
			}
			fmt.Printf("Issue %s is now %s\n", shortUUID(i.ID),
				formatter.IssueStatusBadge(i.Status, i.EscalationLevel))
			return nil
		},
	}

	if wantsNote {
		cmd.Flags().StringVar(&note, "note", "", "Justification or resolution note")
		_ = cmd.MarkFlagRequired("note")
	}

	return cmd
}

func newIssueRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Issues.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed issue %s\n", shortUUID(args[0]))
			return nil
		},
	}
}
