package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/eletronicos-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by the auth handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// ApplianceStore persists eletronicos rows. Update and Delete report
// ErrNotFound when no row matched the id.
type ApplianceStore interface {
	CreateAppliance(ctx context.Context, appliance models.Appliance) (models.Appliance, error)
	ListAppliances(ctx context.Context) ([]models.Appliance, error)
	GetAppliance(ctx context.Context, id int64) (models.Appliance, error)
	UpdateAppliance(ctx context.Context, id int64, appliance models.Appliance) error
	DeleteAppliance(ctx context.Context, id int64) error
}

// Store is the full persistence surface owned by the server process.
type Store interface {
	UserStore
	ApplianceStore
	Ping(ctx context.Context) error
	Close() error
}
