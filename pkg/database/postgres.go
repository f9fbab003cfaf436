package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/uptrace/bun/driver/pgdriver"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "001_user_settings",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS user_settings (
					chat_id         BIGINT PRIMARY KEY,
					-- speech recognition group
					language        TEXT NOT NULL DEFAULT 'en-US',
					detect_language BOOLEAN NOT NULL DEFAULT FALSE,
					model           TEXT NOT NULL DEFAULT '',
					-- text intelligence group
					ti_language     TEXT NOT NULL DEFAULT 'en',
					summarize       TEXT NOT NULL DEFAULT 'v2',
					topics          BOOLEAN NOT NULL DEFAULT TRUE,
					intents         BOOLEAN NOT NULL DEFAULT TRUE,
					sentiment       BOOLEAN NOT NULL DEFAULT TRUE,
					-- bot UI language (en|vi)
					ui_language     TEXT NOT NULL DEFAULT 'en',
					created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)
			`},
			Down: []string{`DROP TABLE user_settings`},
		},
	},
}

// NewPostgres opens the settings database and brings the schema up to date.
func NewPostgres(url string) (*sql.DB, error) {
	db := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(url)))

	// A small pool is plenty for a bot.
	db.SetMaxOpenConns(4)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging db: %w", err)
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	slog.Info("database ready", "migrations_applied", n)

	return db, nil
}
