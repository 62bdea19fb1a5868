package main

import (
	"github.com/spf13/cobra"

	"github.com/washpoint/washpoint/config"
	_ "github.com/washpoint/washpoint/database/migrations"
	"github.com/washpoint/washpoint/database/seeders"
	"github.com/washpoint/washpoint/pkg/database"
	"github.com/washpoint/washpoint/pkg/migration"
)

func init() {
	rootCmd.AddCommand(migrateCmd, migrateRollbackCmd, migrateStatusCmd, seedCmd)
}

func withDB(run func() error) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}
	return run()
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return migration.New(database.DB).Run()
		})
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return migration.New(database.DB).Rollback()
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show which migrations have run",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return migration.New(database.DB).Status()
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load baseline categories and price books",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func() error {
			return seeders.RunAll(database.DB)
		})
	},
}
