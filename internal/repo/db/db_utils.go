package db

import (
	"database/sql"
	"errors"
	"github.com/veracourse/portal/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"os"
	"path/filepath"
)

func applyMigrations(db *sql.DB, conf config.Config) error {
	driver, err := pgx.WithInstance(db, &pgx.Config{})
	if err != nil {
		return err
	}

	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = filepath.ToSlash(
			filepath.Join("internal", "repo", "db", "migration"),
		)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, conf.DB.Database, driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			zap.L().Info("No migrations to apply")
			return nil
		} else {
			zap.L().Error("Failed to apply migrations", zap.Error(err))
			return err
		}
	}

	zap.L().Info("Applied migrations")
	return nil
}

// mustPrecreate seeds the first admin account from the environment so a
// fresh deployment is reachable without manual SQL.
func mustPrecreate(conf config.Config, db *sql.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	pass := os.Getenv("ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return
	}

	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		zap.L().Fatal("failed to check for admin", zap.Error(err))
	}

	if exists {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Fatal("failed to hash admin password", zap.Error(err))
	}

	_, err = db.Exec(
		`INSERT INTO admins (name, email, password) VALUES ($1, $2, $3)`,
		"admin", email, string(hashed),
	)
	if err != nil {
		zap.L().Fatal("failed to precreate admin", zap.Error(err))
	}

	zap.L().Info("Precreated admin account", zap.String("email", email))
}
