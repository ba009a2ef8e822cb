package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/fieldops-server/internal/config"
	"github.com/carson-networks/fieldops-server/internal/logging"
)

func main() {
	source := flag.String("source", "file://migrations", "migration source URL")
	down := flag.Bool("down", false, "roll back a single migration instead of applying all pending ones")
	flag.Parse()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		logger.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	m, err := newMigrator(db, *source)
	if err != nil {
		logger.WithError(err).Fatal("newMigrator")
		return
	}

	before, err := ledgerVersion(m)
	if err != nil {
		logger.WithError(err).Fatal("ledgerVersion.before")
		return
	}

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.WithError(err).WithField("down", *down).Fatal("Migrate.apply error")
		return
	}

	after, err := ledgerVersion(m)
	if err != nil {
		logger.WithError(err).Fatal("ledgerVersion.after")
		return
	}

	logger.WithFields(logrus.Fields{
		"address":     env.PostgresAddress,
		"database":    env.PostgresDB,
		"fromVersion": before,
		"toVersion":   after,
		"rolledBack":  *down,
	}).Info("Migrate.complete")
}

func newMigrator(db *sql.DB, source string) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres driver: %w", err)
	}
	return migrate.NewWithDatabaseInstance(source, "postgres", driver)
}

// ledgerVersion reports 0 for a database that has never been migrated.
func ledgerVersion(m *migrate.Migrate) (uint, error) {
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return version, err
}
