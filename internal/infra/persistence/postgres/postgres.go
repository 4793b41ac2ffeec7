// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"fittrack/config"
	"fittrack/internal/errors"
	"fittrack/internal/infra/persistence/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the database connection and keeps the schema current.
// Driver errors are left untranslated: the repositories inspect the raw
// *pgconn.PgError to learn which unique constraint a violation names,
// and gorm's translation would discard that.
func New(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect postgres")
	}

	if err := db.AutoMigrate(&model.AccountModel{}, &model.WorkoutModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}
