package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/eletronicos-be/internal/models"
	"github.com/hongminglow/eletronicos-be/internal/storage"
	"github.com/hongminglow/eletronicos-be/internal/storage/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// uniqueViolation is the SQLSTATE raised by a UNIQUE constraint.
const uniqueViolation = "23505"

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for users and appliances.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Ping checks that a pooled connection can reach the server.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()
	return migrations.Up(ctx, db, goose.DialectPostgres)
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO usuarios (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := s.pool.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Role).Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// FindByUsername fetches a user by username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `
	SELECT id, username, COALESCE(password, ''), COALESCE(role, '')
	FROM usuarios
	WHERE username = $1;
	`
	var user models.User
	err := s.pool.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

const selectAppliance = `
	SELECT id, COALESCE(eletronico, ''), consumo, status,
		COALESCE(gasto, ''), COALESCE(descricao, '')
	FROM eletronicos`

// CreateAppliance inserts a row and returns it with the assigned id. Unlike
// SQLite, Postgres rejects a consumo or status it cannot convert.
func (s *Store) CreateAppliance(ctx context.Context, a models.Appliance) (models.Appliance, error) {
	const query = `
		INSERT INTO eletronicos (eletronico, consumo, status, gasto, descricao)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := s.pool.QueryRow(ctx, query, a.Name, a.Consumption, a.Active, string(a.Cost), a.Description).Scan(&a.ID)
	if err != nil {
		return models.Appliance{}, fmt.Errorf("insert appliance: %w", err)
	}
	return a, nil
}

// ListAppliances returns every row ordered by id.
func (s *Store) ListAppliances(ctx context.Context) ([]models.Appliance, error) {
	rows, err := s.pool.Query(ctx, selectAppliance+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list appliances: %w", err)
	}
	defer rows.Close()

	out := []models.Appliance{}
	for rows.Next() {
		a, err := scanAppliance(rows)
		if err != nil {
			return nil, fmt.Errorf("list appliances: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appliances: %w", err)
	}
	return out, nil
}

// GetAppliance fetches a single row by id.
func (s *Store) GetAppliance(ctx context.Context, id int64) (models.Appliance, error) {
	a, err := scanAppliance(s.pool.QueryRow(ctx, selectAppliance+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Appliance{}, storage.ErrNotFound
		}
		return models.Appliance{}, fmt.Errorf("get appliance: %w", err)
	}
	return a, nil
}

// UpdateAppliance replaces all mutable columns of the row.
func (s *Store) UpdateAppliance(ctx context.Context, id int64, a models.Appliance) error {
	const query = `
		UPDATE eletronicos
		SET eletronico = $1, consumo = $2, status = $3, gasto = $4, descricao = $5
		WHERE id = $6`
	tag, err := s.pool.Exec(ctx, query, a.Name, a.Consumption, a.Active, string(a.Cost), a.Description, id)
	if err != nil {
		return fmt.Errorf("update appliance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteAppliance hard-deletes the row.
func (s *Store) DeleteAppliance(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM eletronicos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appliance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanAppliance(row pgx.Row) (models.Appliance, error) {
	var a models.Appliance
	var cost string
	if err := row.Scan(&a.ID, &a.Name, &a.Consumption, &a.Active, &cost, &a.Description); err != nil {
		return models.Appliance{}, err
	}
	a.Cost = models.LooseText(cost)
	return a, nil
}
