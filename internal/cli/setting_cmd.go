package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Manage settings",
	}

	cmd.AddCommand(
		newSettingListCmd(app),
		newSettingGetCmd(app),
		newSettingSetCmd(app),
	)

	return cmd
}

func newSettingListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.List(context.Background())
			if err != nil {
				return err
			}

			if len(settings) == 0 {
				fmt.Println("No settings stored.")
				return nil
			}

			rows := make([][]string, 0, len(settings))
			for _, s := range settings {
				rows = append(rows, []string{
					s.Key,
					s.RawValue,
					string(s.Type),
					formatter.Dim(s.Description),
				})
			}

			fmt.Print(formatter.RenderTable([]string{"Key", "Value", "Type", "Description"}, rows))
			return nil
		},
	}
}

func newSettingGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Show a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s (%s)\n", s.Key, s.RawValue, s.Type)
			return nil
		},
	}
}

func newSettingSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Set(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}
