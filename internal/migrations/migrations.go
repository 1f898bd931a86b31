// Package migrations embeds the schema migrations and the optional admin seed
// that the -migrate and -seed boot flags trigger.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
)

//go:embed sql/*.sql
var files embed.FS

// Run applies all pending migrations against the database at dsn. goose keeps
// its own version table, so repeated runs are no-ops.
func Run(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(files)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Seed inserts the platform admin user when the users table is empty. Seeding
// an already-populated store is a no-op.
func Seed(ctx context.Context, db *pgxpool.Pool, email, password string, logger *slog.Logger) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `INSERT INTO users (id, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4)`, uuid.New(), email, hash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	logger.Info("seeded admin user", slog.String("email", email))
	return nil
}
