package storage

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/carson-networks/fieldops-server/internal/config"
	"github.com/carson-networks/fieldops-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB      *sql.DB
	Exports sqlconfig.IExportTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:      db,
		Exports: sqlconfig.NewExportsTable(db),
	}, nil
}
