package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/gantry/internal/cli"
	"github.com/alexanderramin/gantry/internal/db"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gantry/gantry.db
	dbPath := os.Getenv("GANTRY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gantry", "gantry.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	issueRepo := repository.NewSQLiteIssueRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	settingRepo := repository.NewSQLiteSettingRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging goes to stderr only when it is not a terminal, so
	// piped or redirected runs keep a structured trace without cluttering
	// interactive sessions.
	var observers []service.UseCaseObserver
	if uselog := useCaseLogWriter(); uselog != nil {
		observers = append(observers, service.NewLogUseCaseObserver(uselog))
	}

	settingsSvc := service.NewSettingsService(settingRepo)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Tasks:    service.NewTaskService(taskRepo, depRepo, projectRepo, uow),
		Deps:     service.NewDependencyService(depRepo, taskRepo),
		Schedule: service.NewScheduleService(projectRepo, taskRepo, depRepo, holidayRepo, uow, observers...),
		Issues:   service.NewIssueService(issueRepo, taskRepo),
		Holidays: service.NewHolidayService(holidayRepo, projectRepo),
		Settings: settingsSvc,
		Status:   service.NewStatusService(projectRepo, taskRepo, holidayRepo, settingsSvc),
		Import:   service.NewImportService(uow, observers...),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func useCaseLogWriter() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return nil
	}
	return os.Stderr
}
