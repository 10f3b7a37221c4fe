package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/racecond/config"
	"github.com/padraicbc/racecond/models"
)

// Open wraps a PostgreSQL connector for dsn in a bun.DB without connecting.
func Open(dsn string, debug bool) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db
}

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	db := Open(cfg.PostgresDSN(), cfg.Debug)

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates the tables backing API sign-in.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}
	return nil
}

// UpsertUser stores user, replacing the password of an existing user with the same name.
func UpsertUser(ctx context.Context, db bun.IDB, user *models.User) error {
	if _, err := upsertUserQuery(db, user).Exec(ctx); err != nil {
		return fmt.Errorf("upsert user %q: %w", user.Username, err)
	}
	return nil
}

func upsertUserQuery(db bun.IDB, user *models.User) *bun.InsertQuery {
	return db.NewInsert().Model(user).
		On("CONFLICT (username) DO UPDATE").
		Set("password = EXCLUDED.password")
}

// FindUser loads the user with the given name.
func FindUser(ctx context.Context, db bun.IDB, username string) (*models.User, error) {
	user := &models.User{}
	if err := db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx); err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return user, nil
}

// UserExists reports whether a user with the given name is registered.
func UserExists(ctx context.Context, db bun.IDB, username string) (bool, error) {
	return db.NewSelect().Model((*models.User)(nil)).
		Where("username = ?", username).
		Exists(ctx)
}
