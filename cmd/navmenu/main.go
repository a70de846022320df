package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/navmenu-io/navmenu/internal/cli"
	"github.com/navmenu-io/navmenu/internal/db"
	"github.com/navmenu-io/navmenu/internal/repository"
	"github.com/navmenu-io/navmenu/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.navmenu/navmenu.db
	dbPath := os.Getenv("NAVMENU_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".navmenu", "navmenu.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	itemRepo := repository.NewSQLiteMenuItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.OperationObserver
	if os.Getenv("NAVMENU_LOG") != "" {
		observers = append(observers, service.NewLogOperationObserver(os.Stderr))
	}

	app := &cli.App{
		Menu: service.NewMenuService(itemRepo, uow, observers...),
	}

	// Detect interactive terminal for wizard and browse entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
