package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/hongminglow/eletronicos-be/internal/models"
	"github.com/hongminglow/eletronicos-be/internal/storage"
	"github.com/hongminglow/eletronicos-be/internal/storage/migrations"
)

// busyTimeoutMS bounds how long a writer waits on a locked database file.
const busyTimeoutMS = 5000

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides SQLite-backed persistence for users and appliances.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path and creates the tables
// when they are missing.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite: database path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL", path, busyTimeoutMS)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := migrations.Up(ctx, db, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateUser inserts a new user row. The UNIQUE constraint on username is
// reported as storage.ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO usuarios (username, password, role) VALUES (?, ?, ?)`,
		user.Username, user.PasswordHash, user.Role)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return user, nil
}

// FindByUsername fetches a user by exact username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, role FROM usuarios WHERE username = ?`, username)

	var (
		user     models.User
		password sql.NullString
		role     sql.NullString
	)
	if err := row.Scan(&user.ID, &user.Username, &password, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	user.PasswordHash = password.String
	user.Role = role.String
	return user, nil
}

// CreateAppliance inserts a row and returns it with the assigned id.
func (s *Store) CreateAppliance(ctx context.Context, a models.Appliance) (models.Appliance, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO eletronicos (eletronico, consumo, status, gasto, descricao) VALUES (?, ?, ?, ?, ?)`,
		a.Name, a.Consumption, a.Active, string(a.Cost), a.Description)
	if err != nil {
		return models.Appliance{}, fmt.Errorf("insert appliance: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Appliance{}, fmt.Errorf("insert appliance: %w", err)
	}
	a.ID = id
	return a, nil
}

// ListAppliances returns every row in storage order.
func (s *Store) ListAppliances(ctx context.Context) ([]models.Appliance, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, eletronico, consumo, status, gasto, descricao FROM eletronicos`)
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
	row := s.db.QueryRowContext(ctx,
		`SELECT id, eletronico, consumo, status, gasto, descricao FROM eletronicos WHERE id = ?`, id)
	a, err := scanAppliance(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Appliance{}, storage.ErrNotFound
		}
		return models.Appliance{}, fmt.Errorf("get appliance: %w", err)
	}
	return a, nil
}

// UpdateAppliance replaces all mutable columns of the row.
func (s *Store) UpdateAppliance(ctx context.Context, id int64, a models.Appliance) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE eletronicos SET eletronico = ?, consumo = ?, status = ?, gasto = ?, descricao = ? WHERE id = ?`,
		a.Name, a.Consumption, a.Active, string(a.Cost), a.Description, id)
	if err != nil {
		return fmt.Errorf("update appliance: %w", err)
	}
	return requireAffected(res, "update appliance")
}

// DeleteAppliance hard-deletes the row.
func (s *Store) DeleteAppliance(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM eletronicos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete appliance: %w", err)
	}
	return requireAffected(res, "delete appliance")
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanAppliance tolerates NULLs and text in the numeric columns, which older
// clients were free to write.
func scanAppliance(row scanner) (models.Appliance, error) {
	var (
		a           models.Appliance
		name        sql.NullString
		cost        sql.NullString
		description sql.NullString
	)
	if err := row.Scan(&a.ID, &name, &a.Consumption, &a.Active, &cost, &description); err != nil {
		return models.Appliance{}, err
	}
	a.Name = name.String
	if n, ok := a.Active.Interface().(int64); ok {
		a.Active = models.Bool(n != 0)
	}
	a.Cost = models.LooseText(cost.String)
	a.Description = description.String
	return a, nil
}
