package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists tenants.
type Repository interface {
	Create(ctx context.Context, t Tenant) error
	List(ctx context.Context) ([]Tenant, error)
}

// PostgresRepository stores tenants in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed tenant store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a tenant record. No uniqueness constraint applies to slug.
func (r *PostgresRepository) Create(ctx context.Context, t Tenant) error {
	tenantID, err := uuid.Parse(t.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO tenants (id, name, slug, plan, created_at)
        VALUES ($1, $2, $3, $4, $5)`, tenantID, t.Name, t.Slug, t.Plan, t.CreatedAt.UTC())
	return err
}

// List returns all tenants ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context) ([]Tenant, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, plan, created_at FROM tenants ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []Tenant
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			t         Tenant
		)
		if err := rows.Scan(&id, &t.Name, &t.Slug, &t.Plan, &createdAt); err != nil {
			return nil, err
		}
		t.ID = id.String()
		t.CreatedAt = createdAt.UTC()
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}
