package cli

import (
	"strings"

	"github.com/alexanderramin/gantry/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Tasks    service.TaskService
	Deps     service.DependencyService
	Schedule service.ScheduleService
	Issues   service.IssueService
	Holidays service.HolidayService
	Settings service.SettingsService
	Status   service.StatusService
	Import   service.ImportService
}

// NewRootCmd creates the top-level "gantry" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gantry",
		Short: "WBS planner and dependency-aware scheduler",
	}

	// Accept underscore spellings for multi-word flags, e.g. --required_end.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newDepCmd(app),
		newScheduleCmd(app),
		newIssueCmd(app),
		newHolidayCmd(app),
		newSettingCmd(app),
		newStatusCmd(app),
	)

	return root
}
