package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

// SourceURL of the migrations directory relative to the working directory
const SourceURL = "file://migrations"

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand needs the mysql database driver and the file source driver to be imported
func MigrateCommand(dsn string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "database migration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(SourceURL, dsn)
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "apply one down migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(SourceURL, dsn)
				return ignoreNoChange(m.Steps(-1))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "set the version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				m := newMigrate(SourceURL, dsn)
				return m.Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current version",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(SourceURL, dsn)
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("VERSION: none")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println("VERSION:", version, "DIRTY:", dirty)
				return nil
			},
		},
	)
	return cmd
}

// MigrateUpForTesting drops everything then migrates up, rootDir contains the migrations directory
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate("file://"+path.Join(rootDir, "migrations"), dsn)

	if err := m.Drop(); err != nil {
		panic(err)
	}

	// Drop removes the migrations table too, a new instance is needed
	m = newMigrate("file://"+path.Join(rootDir, "migrations"), dsn)
	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}
